package models

import "errors"

// Failure classes for the external collaborators. Adapters catch vendor
// errors at their own boundary and wrap them into one of these, so the turn
// controller can branch on the class without knowing the SDK.
var (
	ErrClassification = errors.New("image classification failed")
	ErrTranslation    = errors.New("translation failed")
	ErrStorage        = errors.New("blob storage failed")
	ErrStoreQuery     = errors.New("store query failed")

	// ErrNoMatch is returned when the tag set is empty or overlaps no
	// catalog record. It is a valid "no confident match" outcome, not a
	// transport failure.
	ErrNoMatch = errors.New("no confident catalog match")
)

package bot

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xaenox/gallery-bot/internal/blob"
	"github.com/xaenox/gallery-bot/internal/catalog"
	"github.com/xaenox/gallery-bot/internal/intent"
	"github.com/xaenox/gallery-bot/internal/knowledge"
	"github.com/xaenox/gallery-bot/internal/models"
	"github.com/xaenox/gallery-bot/internal/session"
	"github.com/xaenox/gallery-bot/internal/translate"
	"github.com/xaenox/gallery-bot/internal/vision"
)

// Reply literals. The no-painting pair and the intent diagnostic are sent
// verbatim; the rest pass through the outbound language bridge.
const (
	msgSendURLFirst   = "To ask about a painting, send me a link (URL) to it first."
	msgUploadHint     = "You can also upload a photo of the painting."
	msgUploadFailed   = "Sorry, I couldn't save your image. Please try sending it again."
	msgAnalyzeFailed  = "Sorry, I couldn't analyze the image right now. Please try again later."
	msgNoMatch        = "Sorry, I couldn't confidently match this image to any painting in the catalog."
	msgCatalogFailed  = "Sorry, the catalog is unreachable right now. Please try again later."
	msgIntentFailed   = "Sorry, I'm having trouble understanding right now. Please try again later."
	msgKnowledgeDown  = "Sorry, my knowledge base is unreachable right now. Please try again later."
	msgSearchApology  = "Sorry, I couldn't find an answer for that. Here's what the web says:"
	msgSearchFailed   = "Sorry, I couldn't find an answer for that, and web search is unavailable right now."
	msgMatchedNarr    = "Here is the painting I matched. You can ask me about its author, date, name, style or technique."
	maxSearchResults  = 3
)

var greetingMessages = []string{
	"Hello! I'm GalleryBot \U0001F3A8",
	"Send me a photo or a URL of a painting and I'll try to identify it.",
	"Once identified, you can ask me about its author, date, name, style or technique.",
	"You can also ask me general questions about art.",
}

// Controller is the orchestration core: one call per inbound activity,
// every remote dependency constructor-injected and awaited in sequence.
type Controller struct {
	classifier  vision.Classifier
	matcher     *catalog.Matcher
	catalog     catalog.Store
	bridge      *translate.Bridge
	recognizer  intent.Recognizer
	knowledge   knowledge.Provider
	search      knowledge.Searcher
	blobs       blob.Store
	sessions    session.Store
	callTimeout time.Duration
	logger      *zap.Logger
}

type ControllerDeps struct {
	Classifier  vision.Classifier
	Matcher     *catalog.Matcher
	Catalog     catalog.Store
	Bridge      *translate.Bridge
	Recognizer  intent.Recognizer
	Knowledge   knowledge.Provider
	Search      knowledge.Searcher
	Blobs       blob.Store
	Sessions    session.Store
	CallTimeout time.Duration
	Logger      *zap.Logger
}

func NewController(deps ControllerDeps) *Controller {
	if deps.CallTimeout <= 0 {
		deps.CallTimeout = 15 * time.Second
	}
	return &Controller{
		classifier:  deps.Classifier,
		matcher:     deps.Matcher,
		catalog:     deps.Catalog,
		bridge:      deps.Bridge,
		recognizer:  deps.Recognizer,
		knowledge:   deps.Knowledge,
		search:      deps.Search,
		blobs:       deps.Blobs,
		sessions:    deps.Sessions,
		callTimeout: deps.CallTimeout,
		logger:      deps.Logger,
	}
}

// Greeting is the fixed sequence sent when a participant joins. It bypasses
// the dispatch algorithm entirely.
func (c *Controller) Greeting() []models.Reply {
	replies := make([]models.Reply, len(greetingMessages))
	for i, m := range greetingMessages {
		replies[i] = models.Reply{Text: m}
	}
	return replies
}

// HandleTurn processes exactly one inbound activity and returns the replies
// to send. Both session documents are written back unconditionally before
// it returns, even on no-op turns.
func (c *Controller) HandleTurn(ctx context.Context, act models.Activity) []models.Reply {
	key := session.Key{ConversationID: act.ConversationID, UserID: act.UserID}

	profile, err := c.sessions.LoadProfile(ctx, key)
	if err != nil {
		c.logger.Error("Failed to load profile, starting fresh",
			zap.Error(err),
			zap.Int64("user_id", act.UserID))
		profile = models.NewUserProfile()
	}
	convData, err := c.sessions.LoadConversationData(ctx, key)
	if err != nil {
		c.logger.Error("Failed to load conversation data, starting fresh",
			zap.Error(err),
			zap.String("conversation_id", act.ConversationID))
		convData = &models.ConversationData{}
	}

	var replies []models.Reply
	switch {
	case len(act.MembersAdded) > 0:
		replies = c.Greeting()
	case len(act.Attachments) > 0:
		replies = c.handleAttachments(ctx, act.Attachments, profile)
	case isURL(act.Text):
		replies = c.identify(ctx, strings.TrimSpace(act.Text), profile)
	default:
		replies = c.handleText(ctx, act.Text, profile)
	}

	if err := c.sessions.SaveProfile(ctx, key, profile); err != nil {
		c.logger.Error("Failed to save profile",
			zap.Error(err),
			zap.Int64("user_id", act.UserID))
	}
	if err := c.sessions.SaveConversationData(ctx, key, convData); err != nil {
		c.logger.Error("Failed to save conversation data",
			zap.Error(err),
			zap.String("conversation_id", act.ConversationID))
	}

	return replies
}

// ResetLanguage clears the stored conversation language back to the pivot.
func (c *Controller) ResetLanguage(ctx context.Context, conversationID string, userID int64) error {
	key := session.Key{ConversationID: conversationID, UserID: userID}
	profile, err := c.sessions.LoadProfile(ctx, key)
	if err != nil {
		return err
	}
	profile.Language = models.PivotLanguage
	return c.sessions.SaveProfile(ctx, key, profile)
}

// handleAttachments uploads every attachment in the batch; only the first
// successful upload feeds identification, the rest are kept but ignored.
func (c *Controller) handleAttachments(ctx context.Context, attachments []models.Attachment, profile *models.UserProfile) []models.Reply {
	firstURL := ""
	for _, att := range attachments {
		name := uuid.New().String() + path.Ext(att.Name)
		callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
		url, err := c.blobs.Upload(callCtx, name, att.Data)
		cancel()
		if err != nil {
			c.logger.Error("Failed to upload attachment",
				zap.Error(err),
				zap.String("name", att.Name))
			continue
		}
		if firstURL == "" {
			firstURL = url
		}
	}

	if firstURL == "" {
		return []models.Reply{{Text: c.outbound(ctx, msgUploadFailed, profile)}}
	}
	return c.identify(ctx, firstURL, profile)
}

// identify runs the shared media path: classify the image, find the catalog
// record with the best tag overlap, update the profile, compose the reply.
func (c *Controller) identify(ctx context.Context, imageURL string, profile *models.UserProfile) []models.Reply {
	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	tags, err := c.classifier.Analyze(callCtx, imageURL)
	cancel()
	if err != nil {
		c.logger.Error("Image classification failed",
			zap.Error(err),
			zap.String("image_url", imageURL))
		return []models.Reply{{Text: c.outbound(ctx, msgAnalyzeFailed, profile)}}
	}

	names := models.TagNames(tags)
	callCtx, cancel = context.WithTimeout(ctx, c.callTimeout)
	paintID, err := c.matcher.BestMatch(callCtx, names)
	cancel()
	if err != nil {
		if errors.Is(err, models.ErrNoMatch) {
			return []models.Reply{{Text: c.outbound(ctx, msgNoMatch, profile)}}
		}
		c.logger.Error("Catalog scan failed", zap.Error(err))
		return []models.Reply{{Text: c.outbound(ctx, msgCatalogFailed, profile)}}
	}

	callCtx, cancel = context.WithTimeout(ctx, c.callTimeout)
	record, err := c.catalog.GetRecord(callCtx, paintID)
	cancel()
	if err != nil {
		c.logger.Error("Failed to fetch catalog record",
			zap.Error(err),
			zap.Int("paint_id", paintID))
		return []models.Reply{{Text: c.outbound(ctx, msgCatalogFailed, profile)}}
	}

	profile.SetPainting(record)

	detected := fmt.Sprintf("I detected: %s.", strings.Join(names, ", "))
	return []models.Reply{
		{ImageURL: record.URL, Text: c.outbound(ctx, fmt.Sprintf("This looks like %q.", record.Title), profile)},
		{Text: c.outbound(ctx, detected, profile)},
		{Text: c.outbound(ctx, msgMatchedNarr, profile)},
	}
}

// handleText runs the text/intent path: translate inbound, dispatch on the
// top intent, translate outbound.
func (c *Controller) handleText(ctx context.Context, text string, profile *models.UserProfile) []models.Reply {
	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	pivotText := c.bridge.ToPivot(callCtx, text, profile)
	cancel()

	callCtx, cancel = context.WithTimeout(ctx, c.callTimeout)
	result, err := c.recognizer.Recognize(callCtx, pivotText)
	cancel()
	if err != nil {
		c.logger.Error("Intent recognition failed", zap.Error(err))
		return []models.Reply{{Text: c.outbound(ctx, msgIntentFailed, profile)}}
	}

	switch result.Top {
	case string(intent.KindStructuredQuery):
		if !profile.HasPainting() {
			return []models.Reply{
				{Text: msgSendURLFirst},
				{Text: msgUploadHint},
			}
		}
		sentence := intent.ResolveSub(result.Sub, profile)
		return []models.Reply{{Text: c.outbound(ctx, sentence, profile)}}

	case string(intent.KindKnowledgeLookup):
		return c.handleKnowledge(ctx, pivotText, profile)

	default:
		// Defensive default: echo the label rather than crash the turn.
		return []models.Reply{{Text: fmt.Sprintf("unrecognized intent: %s", result.Top)}}
	}
}

func (c *Controller) handleKnowledge(ctx context.Context, question string, profile *models.UserProfile) []models.Reply {
	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	answers, err := c.knowledge.GetAnswers(callCtx, question)
	cancel()
	if err != nil {
		c.logger.Error("Knowledge lookup failed", zap.Error(err))
		return []models.Reply{{Text: c.outbound(ctx, msgKnowledgeDown, profile)}}
	}

	if len(answers) == 0 {
		return c.searchFallback(ctx, question, profile)
	}

	answer := answers[0].Answer
	if imageURL, rest, ok := knowledge.SplitImageAnswer(answer); ok {
		return []models.Reply{
			{ImageURL: imageURL},
			{Text: c.outbound(ctx, rest, profile)},
		}
	}
	return []models.Reply{{Text: c.outbound(ctx, answer, profile)}}
}

func (c *Controller) searchFallback(ctx context.Context, query string, profile *models.UserProfile) []models.Reply {
	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	results, err := c.search.Search(callCtx, query)
	cancel()
	if err != nil {
		c.logger.Error("Web search fallback failed", zap.Error(err))
		return []models.Reply{{Text: c.outbound(ctx, msgSearchFailed, profile)}}
	}

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}

	replies := []models.Reply{{Text: c.outbound(ctx, msgSearchApology, profile)}}
	for _, r := range results {
		replies = append(replies, models.Reply{Text: fmt.Sprintf("%s - %s", r.Name, r.URL)})
	}
	return replies
}

// outbound translates a pivot-language reply to the profile's language,
// bounded by the per-call timeout. Identity when the language is the pivot.
func (c *Controller) outbound(ctx context.Context, text string, profile *models.UserProfile) string {
	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()
	return c.bridge.FromPivot(callCtx, text, profile)
}

package chat

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/magieskin/storefront-backend/pkg/config"
	"github.com/magieskin/storefront-backend/pkg/logger"
)

// systemInstruction pins the consultant persona and the catalog the model
// is allowed to talk about.
const systemInstruction = `You are the Magie Skin AI Consultant, an expert for a luxury skincare brand called Magie Skin.
We only sell 3 distinct products:
1. Magie Renewal Serum ($125) - For anti-aging and renewal.
2. Magie Radiance Cream ($85) - For hydration and repair.
3. Magie Crystal Essence ($65) - For gentle exfoliation and brightening.

Your goal is to help customers choose the right product based on their skin concerns (dryness, aging, dullness, etc.).
Keep answers concise, elegant, and helpful. Do not mention other brands. If asked about ingredients, explain their benefits simply.
Always maintain a sophisticated, scientific, yet slightly magical and enchanting tone suitable for "Magie Skin".`

// Canned replies for the degraded paths. The widget renders these verbatim,
// so the storefront keeps working without an API key and through provider
// outages.
const (
	ReplyOffline = "I apologize, but I am currently offline. Please check back later."
	ReplyBusy    = "I am currently experiencing high traffic. Please try again shortly."
	ReplyUnclear = "I'm having trouble understanding. Could you rephrase that?"
)

type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Responder answers a single chat turn through Gemini. It never returns an
// error: every failure mode maps to one of the canned replies.
type Responder struct {
	gen   generator
	model string
	logg  *logger.Logger
}

// NewResponder builds the responder. A missing API key or a client
// construction failure leaves the generator nil, which Respond treats as
// the offline path.
func NewResponder(ctx context.Context, cfg config.GeminiConfig, logg *logger.Logger) *Responder {
	r := &Responder{model: cfg.Model, logg: logg}
	if cfg.APIKey == "" {
		if logg != nil {
			logg.Warn(ctx, "chat disabled, gemini api key not set")
		}
		return r
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		if logg != nil {
			logg.Error(ctx, "chat disabled, gemini client init failed", err)
		}
		return r
	}
	r.gen = client.Models
	return r
}

// Respond generates a reply for one user message.
func (r *Responder) Respond(ctx context.Context, message string) string {
	if r.gen == nil {
		return ReplyOffline
	}

	resp, err := r.gen.GenerateContent(ctx, r.model, genai.Text(message), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		if r.logg != nil {
			r.logg.Error(ctx, "chat.generate.failed", err)
		}
		return ReplyBusy
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return ReplyUnclear
	}
	return reply
}

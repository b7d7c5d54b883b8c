package legal

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mishpatech/lawdocs-backend/internal/clients/groq"
	redisc "github.com/mishpatech/lawdocs-backend/internal/clients/redis"
	"github.com/mishpatech/lawdocs-backend/internal/domain"
	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

// Context carries the framing the prompt needs to rewrite a wizard answer in
// legal register without inventing facts.
type Context struct {
	ClaimType      domain.ClaimType
	ApplicantName  string
	RespondentName string
	FieldLabel     string
}

// Transformer rewrites free-text wizard answers into legal register. It never
// fails the caller: any LLM error, timeout or empty reply falls back to the
// original text unchanged.
type Transformer interface {
	Transform(ctx context.Context, text string, tc Context) string
}

type transformer struct {
	log    *logger.Logger
	client groq.Client
	cache  redisc.RephraseCache
}

// NewTransformer accepts a nil cache; caching is then skipped entirely.
func NewTransformer(log *logger.Logger, client groq.Client, cache redisc.RephraseCache) Transformer {
	return &transformer{
		log:    log.With("service", "LegalTransformer"),
		client: client,
		cache:  cache,
	}
}

const systemPrompt = `אתה עוזר משפטי המנסח מחדש תיאורים של בעלי דין לשפה משפטית רשמית המתאימה לכתבי טענות בבית המשפט לענייני משפחה בישראל. שמור על כל העובדות כפי שנמסרו, אל תוסיף עובדות חדשות, והחזר אך ורק את הטקסט המנוסח מחדש.`

func (t *transformer) Transform(ctx context.Context, text string, tc Context) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || t.client == nil {
		return text
	}

	user := buildUserPrompt(trimmed, tc)
	key := cacheKey(systemPrompt, user)

	if t.cache != nil {
		if cached, ok := t.cache.Get(ctx, key); ok {
			return cached
		}
	}

	out, err := t.client.GenerateText(ctx, systemPrompt, user)
	if err != nil {
		t.log.Warn("legal rephrasing failed, keeping original text", "field", tc.FieldLabel, "error", err)
		return text
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return text
	}

	if t.cache != nil {
		t.cache.Set(ctx, key, out)
	}
	return out
}

func buildUserPrompt(text string, tc Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "סוג התביעה: %s\n", tc.ClaimType.HebrewTitle())
	fmt.Fprintf(&b, "התובע/ת: %s\n", tc.ApplicantName)
	fmt.Fprintf(&b, "הנתבע/ת: %s\n", tc.RespondentName)
	if tc.FieldLabel != "" {
		fmt.Fprintf(&b, "השדה: %s\n", tc.FieldLabel)
	}
	fmt.Fprintf(&b, "\nהטקסט לניסוח מחדש:\n%s", text)
	return b.String()
}

func cacheKey(system, user string) string {
	h := sha256.Sum256([]byte(system + "\x00" + user))
	return hex.EncodeToString(h[:])
}

package ai

import (
	"context"
	"strings"
	"unicode"

	"github.com/dongne-wiki/core/internal/config"
	"go.uber.org/zap"
)

const (
	maxTags       = 6
	maxTagRunes   = 12
	minSourceSize = 10
)

// Service suggests hashtags for a document draft. Suggestions are best effort:
// when no provider is configured or the provider call fails, the service falls
// back to extracting candidate words from the draft itself rather than
// returning an error.
type Service struct {
	cfg config.AIConfig
	log *zap.Logger
}

func NewService(cfg config.AIConfig, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{cfg: cfg, log: log.Named("ai")}
}

// SuggestHashtags proposes up to six Korean hashtags for the given draft.
// Drafts with fewer than ten non-space characters get an empty list without a
// provider call.
func (s *Service) SuggestHashtags(ctx context.Context, title, introduction, feature, additionalInfo string) []string {
	body := joinNonEmpty(introduction, feature, additionalInfo)
	source := strings.TrimSpace(title + "\n" + body)
	if countNonSpaceRunes(source) < minSourceSize {
		return []string{}
	}

	provider := selectAIProvider(s.cfg, s.cfg.HashtagModel)
	if provider == nil {
		s.log.Debug("no AI provider configured, extracting hashtags from draft")
		return fallbackTags(source)
	}

	systemPrompt, prompt := buildHashtagPrompt(title, body)
	raw, err := callAIWithSystemPrompt(ctx, provider, systemPrompt, prompt)
	if err != nil {
		s.log.Warn("hashtag suggestion failed",
			zap.String("provider", provider.ID),
			zap.Error(err))
		return []string{}
	}

	var parsed struct {
		Hashtags []string `json:"hashtags"`
	}
	if err := unmarshalAIJSON(raw, &parsed); err != nil {
		s.log.Warn("hashtag response was not valid JSON",
			zap.String("provider", provider.ID),
			zap.Error(err))
		return []string{}
	}

	tags := sanitizeTags(parsed.Hashtags)
	if len(tags) == 0 {
		return fallbackTags(source)
	}
	return tags
}

// sanitizeTags strips '#' and ',' from each tag, drops tags outside the 1..12
// rune range, removes duplicates and caps the result at six entries.
func sanitizeTags(raw []string) []string {
	tags := make([]string, 0, maxTags)
	seen := make(map[string]struct{}, len(raw))
	for _, tag := range raw {
		cleaned := strings.TrimSpace(tag)
		cleaned = strings.ReplaceAll(cleaned, "#", "")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		cleaned = strings.TrimSpace(cleaned)

		n := len([]rune(cleaned))
		if n == 0 || n > maxTagRunes {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		tags = append(tags, cleaned)
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}

// fallbackTags pulls candidate words straight out of the draft text.
func fallbackTags(source string) []string {
	words := strings.FieldsFunc(source, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	return sanitizeTags(words)
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, "\n\n")
}

func countNonSpaceRunes(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

package ai

import (
	"context"
	"testing"

	"github.com/dongne-wiki/core/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestSuggestHashtagsShortDraft(t *testing.T) {
	svc := NewService(config.AIConfig{}, nil)

	tags := svc.SuggestHashtags(context.Background(), "카페", "좋음", "", "")
	assert.Empty(t, tags)
}

func TestSuggestHashtagsFallbackWithoutProvider(t *testing.T) {
	svc := NewService(config.AIConfig{}, nil)

	tags := svc.SuggestHashtags(context.Background(), "성대밥상", "백반이 맛있는 동네 식당입니다", "", "")
	assert.NotEmpty(t, tags)
	assert.LessOrEqual(t, len(tags), maxTags)
	for _, tag := range tags {
		assert.NotContains(t, tag, "#")
		assert.NotContains(t, tag, ",")
	}
}

func TestSanitizeTags(t *testing.T) {
	tags := sanitizeTags([]string{
		"#백반",
		"  가성비  ",
		"노포,",
		"백반",
		"",
		"   ",
		"열두글자를한참넘어가는아주긴태그",
		"혼밥",
		"조용한",
		"세트메뉴",
		"칠번째태그",
	})
	assert.Equal(t, []string{"백반", "가성비", "노포", "혼밥", "조용한", "세트메뉴"}, tags)
}

func TestCountNonSpaceRunes(t *testing.T) {
	assert.Equal(t, 0, countNonSpaceRunes("  \n\t "))
	assert.Equal(t, 4, countNonSpaceRunes("김치 찌개"))
}

func TestUnmarshalAIJSON(t *testing.T) {
	var out struct {
		Hashtags []string `json:"hashtags"`
	}

	err := unmarshalAIJSON("```json\n{\"hashtags\": [\"백반\"]}\n```", &out)
	assert.NoError(t, err)
	assert.Equal(t, []string{"백반"}, out.Hashtags)

	err = unmarshalAIJSON("물론입니다! {\"hashtags\": [\"노포\"]} 어떠세요?", &out)
	assert.NoError(t, err)
	assert.Equal(t, []string{"노포"}, out.Hashtags)

	err = unmarshalAIJSON("태그를 만들 수 없어요", &out)
	assert.Error(t, err)
}

func TestSelectAIProvider(t *testing.T) {
	cfg := config.AIConfig{
		Providers: []config.AIProvider{
			{ID: "disabled", Type: "OpenAI", Enabled: false},
			{ID: "primary", Type: "OpenAI", DefaultModel: "gpt-4o-mini", Enabled: true},
			{ID: "backup", Type: "Anthropic", Enabled: true},
		},
	}

	picked := selectAIProvider(cfg, nil)
	assert.NotNil(t, picked)
	assert.Equal(t, "primary", picked.ID)

	picked = selectAIProvider(cfg, &config.AIModelAssignment{ProviderID: "backup", Model: "claude-haiku-4-5-20251001"})
	assert.NotNil(t, picked)
	assert.Equal(t, "backup", picked.ID)
	assert.Equal(t, "claude-haiku-4-5-20251001", picked.DefaultModel)

	// Unknown assignment falls back to the first enabled provider.
	picked = selectAIProvider(cfg, &config.AIModelAssignment{ProviderID: "ghost"})
	assert.NotNil(t, picked)
	assert.Equal(t, "primary", picked.ID)

	assert.Nil(t, selectAIProvider(config.AIConfig{}, nil))
}

func TestNormalizeEndpoints(t *testing.T) {
	assert.Equal(t, "https://api.example.com/v1", normalizeOpenAIBaseURL("https://api.example.com"))
	assert.Equal(t, "https://api.example.com/v1", normalizeOpenAIBaseURL("https://api.example.com/v1/"))
	assert.Equal(t, "", normalizeOpenAIBaseURL("  "))

	assert.Equal(t, "https://api.openai.com", normalizeOpenAICompatibleEndpoint(""))
	assert.Equal(t, "https://api.example.com", normalizeOpenAICompatibleEndpoint("https://api.example.com/v1"))
}

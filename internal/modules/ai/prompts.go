package ai

import (
	"fmt"
	"strings"
)

const hashtagSystemPrompt = `당신은 동네 백과사전의 해시태그 작성 도우미입니다.

요구사항:
- 반드시 JSON 형식으로만 응답하세요. 다른 설명을 붙이지 마세요.
- 해시태그는 3개 이상 6개 이하로 제안하세요.
- 각 태그는 1자 이상 12자 이하의 한국어 단어여야 합니다.
- 태그에 '#' 기호나 쉼표를 넣지 마세요.
- 장소의 분위기, 특징, 업종이 드러나는 태그를 고르세요.

응답 형식:
{"hashtags": ["태그1", "태그2", "태그3"]}`

func buildHashtagPrompt(title, body string) (string, string) {
	prompt := fmt.Sprintf(`다음 장소 문서에 어울리는 해시태그를 제안해 주세요.

제목: %s

내용:
%s`, strings.TrimSpace(title), truncateText(strings.TrimSpace(body), 1500))

	return hashtagSystemPrompt, prompt
}

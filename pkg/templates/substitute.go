package templates

import (
	"strings"

	"github.com/arthur-debert/vitex/pkg/types"
)

// Substitute replaces the placeholder tokens in content. The subtitle is
// replaced first, then the title, then the author.
func Substitute(content string, subs types.SubstitutionContext) string {
	content = strings.ReplaceAll(content, types.SubtitlePlaceholder, subs.EffectiveSubtitle())
	content = strings.ReplaceAll(content, types.TitlePlaceholder, subs.Title)
	content = strings.ReplaceAll(content, types.AuthorPlaceholder, subs.Author)
	return content
}

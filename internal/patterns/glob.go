package patterns

import "strings"

// regexMeta lists the characters escaped when copied literally from a glob.
// "/" is not included since it has no special meaning in the target syntax.
const regexMeta = `()[]{}?*+-|^$\.&~# `

// GlobToRegex converts a glob pattern into an equivalent regular expression
// body without anchors. It supports "?", "*", the "**" globstar (which also
// crosses "/") and bracket expressions, where a leading "!" negates the set.
// Brace expansion and extglob forms are not recognized; their characters are
// escaped like any other literal. An unterminated "[" is taken literally.
//
// POSIX character classes are not supported. The first "]" closes the
// bracket expression, so "[[:alpha:]]" becomes `[[:alpha:]\]`, which is not a
// valid regular expression and fails in Compile.
func GlobToRegex(glob string) string {
	pat := []rune(glob)
	n := len(pat)

	var b strings.Builder
	for i := 0; i < n; i++ {
		c := pat[i]
		switch c {
		case '?':
			b.WriteString(`[^/]`)
		case '*':
			if i+1 < n && pat[i+1] == '*' {
				b.WriteString(`.*`)
				i++
			} else {
				b.WriteString(`[^/]*`)
			}
		case '[':
			end := closingBracket(pat, i+1)
			if end < 0 {
				b.WriteString(`\[`)
				continue
			}
			body := string(pat[i+1 : end])
			if rest, ok := strings.CutPrefix(body, "!"); ok {
				body = "^" + rest
			}
			b.WriteByte('[')
			b.WriteString(strings.ReplaceAll(body, `\`, `\\`))
			b.WriteByte(']')
			i = end
		default:
			if strings.ContainsRune(regexMeta, c) {
				b.WriteByte('\\')
			}
			b.WriteRune(c)
		}
	}
	return b.String()
}

// closingBracket returns the index of the first ']' at or after from, or -1.
func closingBracket(pat []rune, from int) int {
	for j := from; j < len(pat); j++ {
		if pat[j] == ']' {
			return j
		}
	}
	return -1
}

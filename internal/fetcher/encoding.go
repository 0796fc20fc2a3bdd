package fetcher

import (
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
)

// sampleRunes is the decoded-prefix length inspected for replacement
// characters when probing encodings.
const sampleRunes = 512

// untrustedCharsets are transport-reported charsets that Korean news
// servers send as a wrong default while actually serving UTF-8 or
// EUC-KR bytes.
var untrustedCharsets = map[string]bool{
	"windows-1252": true,
	"iso-8859-1":   true,
	"us-ascii":     true,
	"ascii":        true,
}

// probeEncodings is the fixed ordered list of regional encodings tried
// when the declared charset produces garbled text.
var probeEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-8", unicode.UTF8},
	{"euc-kr", korean.EUCKR}, // covers cp949 in the WHATWG index
}

// decodeBody resolves the page encoding and returns UTF-8 text.
//
// The cascade: trust an explicit, plausible charset from the transport
// or the markup (BOM, Content-Type, meta prescan); otherwise try UTF-8;
// if the result still contains replacement characters, probe the
// regional encodings (detector hint first) and accept the first clean
// decode. The final fallback is lossy UTF-8 with ErrEncodingUnresolved.
func decodeBody(body []byte, contentType string) (text, encodingName string, err error) {
	if len(body) == 0 {
		return "", "utf-8", nil
	}

	enc, name, certain := charset.DetermineEncoding(body, contentType)
	trusted := certain || !untrustedCharsets[name]
	// A Latin-esque charset declaration on a page carrying high bytes is
	// a server misconfiguration, not information.
	if untrustedCharsets[name] && hasHighBytes(body) {
		trusted = false
	}
	if trusted {
		if decoded, ok := decodeClean(body, enc); ok {
			return decoded, name, nil
		}
	}

	if utf8.Valid(body) {
		return string(body), "utf-8", nil
	}

	if hint := detectCharset(body); hint != "" {
		if hintEnc, _ := charset.Lookup(hint); hintEnc != nil {
			if decoded, ok := decodeClean(body, hintEnc); ok {
				return decoded, strings.ToLower(hint), nil
			}
		}
	}

	for _, probe := range probeEncodings {
		if decoded, ok := decodeClean(body, probe.enc); ok {
			return decoded, probe.name, nil
		}
	}

	return string(body), "utf-8", ErrEncodingUnresolved
}

// decodeClean decodes body with enc and reports whether the decoded
// prefix sample is free of replacement characters.
func decodeClean(body []byte, enc encoding.Encoding) (string, bool) {
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", false
	}
	text := string(decoded)

	count := 0
	for _, r := range text {
		if r == utf8.RuneError {
			return "", false
		}
		count++
		if count >= sampleRunes {
			break
		}
	}

	return text, true
}

func hasHighBytes(body []byte) bool {
	for _, b := range body {
		if b >= 0x80 {
			return true
		}
	}
	return false
}

// detectCharset runs statistical charset detection and returns the best
// candidate name, or empty when detection fails.
func detectCharset(body []byte) string {
	detector := chardet.NewHtmlDetector()
	result, err := detector.DetectBest(body)
	if err != nil || result == nil {
		return ""
	}
	return result.Charset
}

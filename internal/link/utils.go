package link

import (
	"bufio"
	"encoding/base64"
	"regexp"
	"strings"
)

// DecodeBase64 attempts to decode standard and URL-safe base64 strings,
// automatically fixing missing padding.
func DecodeBase64(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	// Fix padding
	if n := len(s) % 4; n != 0 {
		s += strings.Repeat("=", 4-n)
	}

	b, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return string(b), nil
	}

	b, err = base64.URLEncoding.DecodeString(s)
	if err == nil {
		return string(b), nil
	}

	return "", err
}

// FixIllegalURL cleans up stray whitespace in pasted links.
func FixIllegalURL(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return s
}

var regexLink = regexp.MustCompile(`\b(ss|shadowsocks|socks|socks5)://[a-zA-Z0-9_\-\.\:@\?=&%#+/\[\]]+`)

// Extract returns every share link found in text, in order of first
// appearance and without duplicates.
func Extract(text string) []string {
	var links []string
	text = strings.ReplaceAll(text, "\r\n", "\n")
	scanner := bufio.NewScanner(strings.NewReader(text))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		matches := regexLink.FindAllString(line, -1)
		for _, match := range matches {
			clean := strings.TrimRight(match, ".,;)\"")
			if clean != "" {
				links = append(links, clean)
			}
		}
	}
	return deduplicate(links)
}

func deduplicate(input []string) []string {
	seen := make(map[string]bool)
	list := []string{}
	for _, entry := range input {
		if !seen[entry] {
			seen[entry] = true
			list = append(list, entry)
		}
	}
	return list
}

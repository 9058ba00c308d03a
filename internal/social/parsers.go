// Package social extracts profile identifiers from LinkedIn, Facebook and X/Twitter URLs.
package social

import (
	"net/url"
	"strings"

	"agtechsummit/internal/domain"
)

var reservedTwitterPaths = map[string]struct{}{
	"home": {}, "explore": {}, "search": {}, "intent": {}, "i": {}, "share": {},
}

// parse accepts full URLs and bare host/path strings such as "linkedin.com/in/jane".
func parse(raw string) *url.URL {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
		return u
	}
	u, err := url.Parse("https://" + raw)
	if err != nil || u.Host == "" {
		return nil
	}
	return u
}

// segments splits the path as written, keeping percent-escapes, so a handle comes back
// byte for byte.
func segments(u *url.URL) []string {
	var out []string
	for _, p := range strings.Split(u.EscapedPath(), "/") {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func cleanToken(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "@")
	return strings.TrimRight(s, "/")
}

// LinkedinID returns the slug after /in/, /company/ or /school/.
func LinkedinID(raw string) string {
	u := parse(raw)
	if u == nil {
		return ""
	}
	parts := segments(u)
	if len(parts) < 2 {
		return ""
	}
	switch strings.ToLower(parts[0]) {
	case "in", "company", "school":
		return cleanToken(parts[1])
	}
	return ""
}

// FacebookID returns the id query parameter, else the first path segment
// (or the one after profile.php or pages).
func FacebookID(raw string) string {
	u := parse(raw)
	if u == nil {
		return ""
	}
	if id := cleanToken(u.Query().Get("id")); id != "" {
		return id
	}
	parts := segments(u)
	if len(parts) == 0 {
		return ""
	}
	switch strings.ToLower(parts[0]) {
	case "profile.php", "pages":
		if len(parts) < 2 {
			return ""
		}
		return cleanToken(parts[1])
	}
	return cleanToken(parts[0])
}

// TwitterHandle returns the first path segment unless it is a reserved route like /home.
func TwitterHandle(raw string) string {
	u := parse(raw)
	if u == nil {
		return ""
	}
	parts := segments(u)
	if len(parts) == 0 {
		return ""
	}
	handle := cleanToken(parts[0])
	if _, reserved := reservedTwitterPaths[strings.ToLower(handle)]; reserved {
		return ""
	}
	return handle
}

// FillProfile derives missing identifiers from the profile URLs. Set values are kept.
func FillProfile(p *domain.SocialProfile) {
	if p.LinkedinID == "" {
		p.LinkedinID = LinkedinID(p.Linkedin)
	}
	if p.FacebookID == "" {
		p.FacebookID = FacebookID(p.Facebook)
	}
	if p.TwitterHandle == "" {
		p.TwitterHandle = TwitterHandle(p.Twitter)
	}
}

// FillPatch derives identifiers for any URL the patch changes without also setting the identifier.
func FillPatch(p *domain.SocialProfilePatch) {
	derive := func(id **string, link *string, fn func(string) string) {
		if link != nil && *id == nil {
			v := fn(*link)
			*id = &v
		}
	}
	derive(&p.LinkedinID, p.Linkedin, LinkedinID)
	derive(&p.FacebookID, p.Facebook, FacebookID)
	derive(&p.TwitterHandle, p.Twitter, TwitterHandle)
}

// FillApplication derives missing identifiers of a leadership application.
func FillApplication(in *domain.LeadershipApplicationInput) {
	if in.LinkedinID == "" {
		in.LinkedinID = LinkedinID(in.LinkedinURL)
	}
	if in.FacebookID == "" {
		in.FacebookID = FacebookID(in.FacebookURL)
	}
	if in.TwitterHandle == "" {
		in.TwitterHandle = TwitterHandle(in.TwitterURL)
	}
}

// FillApplicationPatch derives identifiers for any application URL the patch changes.
func FillApplicationPatch(p *domain.LeadershipApplicationPatch) {
	derive := func(id **string, link *string, fn func(string) string) {
		if link != nil && *id == nil {
			v := fn(*link)
			*id = &v
		}
	}
	derive(&p.LinkedinID, p.LinkedinURL, LinkedinID)
	derive(&p.FacebookID, p.FacebookURL, FacebookID)
	derive(&p.TwitterHandle, p.TwitterURL, TwitterHandle)
}

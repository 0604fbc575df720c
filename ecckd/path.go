package ecckd

import "strings"

// DerivationPath is an ordered sequence of child numbers. An empty path
// denotes the root (master) key; its textual form is "m".
type DerivationPath []ChildNumber

// ParsePath parses a textual derivation path such as "m/44'/0'/0'/0/0".
// The path must start with "m"; "m" alone is the empty (master) path.
// Empty segments between consecutive slashes are ignored.
func ParsePath(s string) (DerivationPath, error) {
	if s == "m" {
		return DerivationPath{}, nil
	}
	if !strings.HasPrefix(s, "m/") {
		return nil, newErrf(KindInvalidDerivationPath, "path %q must start with \"m\"", s)
	}

	rest := s[2:]
	segments := strings.Split(rest, "/")

	path := make(DerivationPath, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		cn, err := ParseChildNumber(seg)
		if err != nil {
			return nil, err
		}
		path = append(path, cn)
	}
	return path, nil
}

// String renders the path in its canonical textual form, the inverse of
// ParsePath: "m" followed by "/child" for every element.
func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteByte('m')
	for _, cn := range p {
		b.WriteByte('/')
		b.WriteString(cn.String())
	}
	return b.String()
}

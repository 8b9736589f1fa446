package reducer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/mrjoshuak/htmltokenizer/types"
)

// tagNameRegex accepts HTML element names, including custom elements such as
// "my-widget". Anything else (selectors, whitespace, punctuation) is rejected.
var tagNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*(-[a-zA-Z0-9]+)*$`)

// Policy is the compiled markup policy: the tags whose element boundary is
// transparent and the tags whose whole subtree is dropped. A Policy is
// immutable and safe for concurrent use.
type Policy struct {
	unwrap []rule
	remove []rule
}

type rule struct {
	tag      string
	selector cascadia.Selector
}

// NewPolicy validates and compiles the unwrap and remove tag lists.
// Names are lowercased and deduplicated; order within a list does not matter.
func NewPolicy(unwrapTags, removeTags []string) (*Policy, error) {
	unwrap, err := compileRules(unwrapTags)
	if err != nil {
		return nil, err
	}
	remove, err := compileRules(removeTags)
	if err != nil {
		return nil, err
	}
	return &Policy{unwrap: unwrap, remove: remove}, nil
}

// DefaultPolicy returns the policy built from the default tag lists.
func DefaultPolicy() *Policy {
	p, err := NewPolicy(types.DefaultUnwrapTags(), types.DefaultRemoveTags())
	if err != nil {
		panic(fmt.Sprintf("reducer: default policy does not compile: %v", err))
	}
	return p
}

// UnwrapTags returns a copy of the tags that are unwrapped.
func (p *Policy) UnwrapTags() []string {
	return tagsOf(p.unwrap)
}

// RemoveTags returns a copy of the tags that are removed.
func (p *Policy) RemoveTags() []string {
	return tagsOf(p.remove)
}

// Overlap returns the tags present in both lists. Removal runs first, so
// these tags are always removed.
func (p *Policy) Overlap() []string {
	removed := make(map[string]bool, len(p.remove))
	for _, r := range p.remove {
		removed[r.tag] = true
	}

	var both []string
	for _, r := range p.unwrap {
		if removed[r.tag] {
			both = append(both, r.tag)
		}
	}
	return both
}

func compileRules(tags []string) ([]rule, error) {
	rules := make([]rule, 0, len(tags))
	seen := make(map[string]bool, len(tags))

	for _, tag := range tags {
		name := strings.ToLower(strings.TrimSpace(tag))
		if !tagNameRegex.MatchString(name) {
			return nil, types.WrapConfigurationError(types.ErrInvalidTagName, "NewPolicy", fmt.Sprintf("%q", tag))
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		sel, err := cascadia.Compile(name)
		if err != nil {
			return nil, types.WrapConfigurationError(err, "NewPolicy", fmt.Sprintf("%q", tag))
		}
		rules = append(rules, rule{tag: name, selector: sel})
	}
	return rules, nil
}

func tagsOf(rules []rule) []string {
	tags := make([]string, len(rules))
	for i, r := range rules {
		tags[i] = r.tag
	}
	return tags
}

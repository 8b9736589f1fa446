package reducer

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/mrjoshuak/htmltokenizer/types"
)

func TestNewPolicy(t *testing.T) {
	p, err := NewPolicy([]string{"B", " em ", "b", "my-widget"}, []string{"script"})
	if err != nil {
		t.Fatalf("NewPolicy() error = %v", err)
	}

	if got, want := p.UnwrapTags(), []string{"b", "em", "my-widget"}; !reflect.DeepEqual(got, want) {
		t.Errorf("UnwrapTags() = %v, want %v", got, want)
	}
	if got, want := p.RemoveTags(), []string{"script"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveTags() = %v, want %v", got, want)
	}
	if overlap := p.Overlap(); len(overlap) != 0 {
		t.Errorf("Overlap() = %v, want none", overlap)
	}
}

func TestNewPolicyInvalidTagNames(t *testing.T) {
	tests := []struct {
		name   string
		unwrap []string
		remove []string
		tag    string
	}{
		{"empty name", []string{""}, nil, `""`},
		{"selector", []string{"div p"}, nil, `"div p"`},
		{"selector list", nil, []string{"a,b"}, `"a,b"`},
		{"markup", nil, []string{"<b>"}, `"<b>"`},
		{"leading digit", []string{"1abc"}, nil, `"1abc"`},
		{"class selector", []string{"p.note"}, nil, `"p.note"`},
		{"trailing hyphen", []string{"x-"}, nil, `"x-"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPolicy(tt.unwrap, tt.remove)
			if err == nil {
				t.Fatal("NewPolicy() expected an error")
			}
			if !types.IsConfigurationError(err) {
				t.Errorf("NewPolicy() error = %v, want a configuration error", err)
			}
			if !errors.Is(err, types.ErrInvalidTagName) {
				t.Errorf("NewPolicy() error = %v, want ErrInvalidTagName", err)
			}
			if !strings.Contains(err.Error(), tt.tag) {
				t.Errorf("NewPolicy() error = %v, want it to name %s", err, tt.tag)
			}
		})
	}
}

func TestPolicyOverlap(t *testing.T) {
	p, err := NewPolicy([]string{"b", "span", "code"}, []string{"code", "script", "B"})
	if err != nil {
		t.Fatalf("NewPolicy() error = %v", err)
	}
	if got, want := p.Overlap(), []string{"b", "code"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Overlap() = %v, want %v", got, want)
	}
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	if got, want := p.UnwrapTags(), types.DefaultUnwrapTags(); !reflect.DeepEqual(got, want) {
		t.Errorf("UnwrapTags() = %v, want %v", got, want)
	}
	if got, want := p.RemoveTags(), types.DefaultRemoveTags(); !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveTags() = %v, want %v", got, want)
	}

	// Callers get copies
	p.UnwrapTags()[0] = "changed"
	if p.UnwrapTags()[0] != "em" {
		t.Errorf("UnwrapTags() exposed internal state")
	}
}

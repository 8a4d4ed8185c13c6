package species

import (
	"reflect"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"leopard gecko", "leopardgecko"},
		{"  crested\tgecko \n", "crestedgecko"},
		{"ball python", "ballpython"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeTagSynonyms(t *testing.T) {
	for _, variant := range []string{"멋지다", "멋있고", "멋지고", " 멋지다 "} {
		if got := NormalizeTag(variant); got != "멋있다" {
			t.Errorf("NormalizeTag(%q) = %q, want 멋있다", variant, got)
		}
	}
	if got := NormalizeTag("화려하다"); got != "화려하다" {
		t.Errorf("NormalizeTag passthrough = %q, want 화려하다", got)
	}
}

func TestParseTags(t *testing.T) {
	got := ParseTags("멋지다, 화려하다,, ")
	want := []string{"멋있다", "화려하다"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTags = %v, want %v", got, want)
	}

	if got := ParseTags("  "); got != nil {
		t.Errorf("ParseTags(blank) = %v, want nil", got)
	}
}

func TestCategoryValid(t *testing.T) {
	if !CategoryGecko.Valid() {
		t.Error("gecko should be a valid category")
	}
	if Category("dragon").Valid() {
		t.Error("dragon should not be a valid category")
	}
	if len(Categories()) != 9 {
		t.Errorf("expected 9 categories, got %d", len(Categories()))
	}
}

func TestHasTag(t *testing.T) {
	sp := &Species{AppearanceTags: []string{"멋있다", "화려하다"}}
	if !sp.HasTag("멋있다") {
		t.Error("expected tag 멋있다")
	}
	if sp.HasTag("귀엽다") {
		t.Error("unexpected tag 귀엽다")
	}
}

package prompt

import (
	"strings"
	"testing"

	"imagecraft/internal/domain"
)

func TestEnhanceScenarios(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		mask  domain.MaskType
		style domain.ImageStyle
		want  string
	}{
		{
			name:  "mask already mentioned",
			raw:   "Happy child with colorful superhero mask",
			mask:  domain.MaskTypeCustom,
			style: domain.ImageStyleCartoon,
			want:  "Happy child with colorful superhero mask, cartoon illustration style, friendly character, " + SafetySuffix,
		},
		{
			name:  "mask clause appended",
			raw:   "Young doctor smiling",
			mask:  domain.MaskTypeMedical,
			style: domain.ImageStyleRealistic,
			want:  "Young doctor smiling, wearing a protective medical face covering, photorealistic portrait, professional photography style, " + SafetySuffix,
		},
		{
			name:  "covering counts as mask",
			raw:   "Nurse with a blue COVERING",
			mask:  domain.MaskTypeFashion,
			style: domain.ImageStyleAbstract,
			want:  "Nurse with a blue COVERING, abstract artistic interpretation, " + SafetySuffix,
		},
		{
			name:  "unknown selectors fall back",
			raw:   "Friendly person",
			mask:  domain.MaskType("space"),
			style: domain.ImageStyle("noir"),
			want:  "Friendly person, wearing a unique face covering, photorealistic portrait, professional photography style, " + SafetySuffix,
		},
		{
			name:  "denylisted terms stripped and whitespace collapsed",
			raw:   "  A  SEXY  knight with a Gun   ",
			mask:  domain.MaskTypeCarnival,
			style: domain.ImageStyleArtistic,
			want:  "A knight with a, wearing a decorative festive mask, artistic portrait style, creative interpretation, " + SafetySuffix,
		},
		{
			name:  "prompt emptied by stripping keeps clauses",
			raw:   "blood gore",
			mask:  domain.MaskTypeSports,
			style: domain.ImageStyleRealistic,
			want:  ", wearing a sports face covering, photorealistic portrait, professional photography style, " + SafetySuffix,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Enhance(tc.raw, tc.mask, tc.style)
			if got != tc.want {
				t.Fatalf("Enhance() =\n%q\nwant\n%q", got, tc.want)
			}
		})
	}
}

func TestEnhanceIsDeterministic(t *testing.T) {
	e := NewStaticEnhancer()
	first := e.Enhance("Artist with golden venetian mask", domain.MaskTypeArtistic, domain.ImageStyleArtistic)
	for i := 0; i < 10; i++ {
		if got := e.Enhance("Artist with golden venetian mask", domain.MaskTypeArtistic, domain.ImageStyleArtistic); got != first {
			t.Fatalf("run %d produced %q, want %q", i, got, first)
		}
	}
}

func TestEnhanceNeverEmitsDenylistedTerms(t *testing.T) {
	inputs := []string{}
	for _, term := range Denylist() {
		inputs = append(inputs,
			term,
			strings.ToUpper(term),
			"a "+strings.ToUpper(term[:1])+term[1:]+" scene",
			term[:1]+term+term[1:],
			"pre"+term+"post",
		)
	}
	inputs = append(inputs, "gugunn", "kikillll", "BLbloodOOD", "nunudede")

	for _, in := range inputs {
		for _, mask := range domain.MaskTypes {
			for _, style := range domain.ImageStyles {
				out := Enhance(in, mask, style)
				if ContainsDenylisted(out) {
					t.Fatalf("Enhance(%q, %s, %s) = %q still contains a denylisted term", in, mask, style, out)
				}
			}
		}
	}
}

func TestClausesContainNoDenylistedTerms(t *testing.T) {
	for _, mask := range domain.MaskTypes {
		if ContainsDenylisted(MaskClause(mask)) {
			t.Fatalf("mask clause for %s contains a denylisted term", mask)
		}
	}
	for _, style := range domain.ImageStyles {
		if ContainsDenylisted(StyleClause(style)) {
			t.Fatalf("style clause for %s contains a denylisted term", style)
		}
	}
	if ContainsDenylisted(SafetySuffix) {
		t.Fatal("safety suffix contains a denylisted term")
	}
}

func TestMaskClauseAppendedOnlyWithoutMaskWords(t *testing.T) {
	for _, mask := range domain.MaskTypes {
		clause := MaskClause(mask)

		without := Enhance("Smiling teacher in a classroom", mask, domain.ImageStyleRealistic)
		if !strings.Contains(without, clause) {
			t.Fatalf("expected %q to contain mask clause %q", without, clause)
		}

		with := Enhance("Smiling teacher wearing a Mask", mask, domain.ImageStyleRealistic)
		if strings.Contains(with, clause) {
			t.Fatalf("expected %q not to contain mask clause %q", with, clause)
		}
	}
}

func TestDenylistReturnsCopy(t *testing.T) {
	list := Denylist()
	list[0] = "changed"
	if Denylist()[0] == "changed" {
		t.Fatal("Denylist must not expose the internal slice")
	}
}

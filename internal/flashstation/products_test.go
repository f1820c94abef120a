package flashstation

import (
	"reflect"
	"testing"
)

func TestCandidateProduct_Rules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		literal string
		generic bool
		want    string
	}{
		{name: "denied timing placeholder", literal: "${h}ms", want: ""},
		{name: "denied pixel placeholder", literal: "${w}px", want: ""},
		{name: "denied bare placeholder", literal: "${d}", want: ""},
		{name: "denied chipid directive", literal: "directive_chipid_${d}", want: ""},
		{name: "placeholder substitution", literal: "${d}_fullmte", want: "komodo_fullmte"},
		{name: "placeholder prefix", literal: "aosp_${device}_hwasan", want: "aosp_komodo_hwasan"},
		{name: "codename with variant", literal: "aosp_komodo_16k", want: "aosp_komodo_16k"},
		{name: "codename suffix variant", literal: "komodo_16k", want: "komodo_16k"},
		{name: "codename without underscore", literal: "komodo", want: ""},
		{name: "unrelated literal", literal: "loading_spinner", want: ""},
		{name: "gsi rejected by default", literal: "aosp_arm64_pubsign", want: ""},
		{name: "gsi accepted with generic", literal: "aosp_arm64_pubsign", generic: true, want: "aosp_arm64_pubsign"},
		{name: "kernel gsi", literal: "kernel_aarch64", generic: true, want: "kernel_aarch64"},
		{name: "double placeholder ignored", literal: "${a}_${b}", want: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := candidateProduct("komodo", tc.generic, tc.literal)
			if got != tc.want {
				t.Fatalf("candidateProduct(%q, generic=%v) = %q, want %q", tc.literal, tc.generic, got, tc.want)
			}
		})
	}
}

func TestCandidateProducts_HarvestsSortedUniqueSet(t *testing.T) {
	t.Parallel()

	script := "var a=\"${d}_fullmte\";var b=`aosp_komodo_16k`;var c=\"${h}ms\";" +
		"var d=\"aosp_komodo_16k\";var e=\"kernel_aarch64\";var f=\"Widget\";"

	got := candidateProducts("komodo", false, script)
	want := []string{"aosp_komodo_16k", "komodo", "komodo_fullmte"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("candidateProducts = %v, want %v", got, want)
	}

	got = candidateProducts("komodo", true, script)
	want = []string{"aosp_komodo_16k", "kernel_aarch64", "komodo", "komodo_fullmte"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("candidateProducts (generic) = %v, want %v", got, want)
	}
}

func TestCandidateProducts_AlwaysIncludesCodename(t *testing.T) {
	t.Parallel()

	got := candidateProducts("komodo", false, "")
	want := []string{"komodo"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("candidateProducts on empty script = %v, want %v", got, want)
	}
}

func TestIsGenericProduct(t *testing.T) {
	t.Parallel()

	generic := []string{"aosp_arm64_pubsign", "kernel_aarch64", "arm64", "aosp_arm"}
	for _, p := range generic {
		if !IsGenericProduct(p) {
			t.Fatalf("IsGenericProduct(%q) = false, want true", p)
		}
	}

	specific := []string{"komodo", "komodo_beta", "aosp_komodo_16k", "armadillo"}
	for _, p := range specific {
		if IsGenericProduct(p) {
			t.Fatalf("IsGenericProduct(%q) = true, want false", p)
		}
	}
}

package hebrew

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "plain hebrew unchanged",
			in:   "תל אביב",
			want: "תל אביב",
		},
		{
			name: "latin text lowercased",
			in:   "Cafe Tel-Aviv",
			want: "cafe tel aviv",
		},
		{
			name: "directional marks removed",
			in:   "‏תל אביב‎",
			want: "תל אביב",
		},
		{
			name: "embedding controls removed",
			in:   "‫קריית גת‬‪",
			want: "קריית גת",
		},
		{
			name: "dashes become spaces",
			in:   "תל-אביב–יפו—מרכז",
			want: "תל אביב יפו מרכז",
		},
		{
			name: "gershayim and geresh stripped",
			in:   "צה״ל וג׳ורג",
			want: "צהל וגורג",
		},
		{
			name: "quotes and punctuation stripped",
			in:   `"בית" 'קפה' (מרכז), [חדש]!`,
			want: "בית קפה מרכז חדש",
		},
		{
			name: "curly quotes stripped",
			in:   "“שלום” ‘עולם’",
			want: "שלום עולם",
		},
		{
			name: "slashes and pipes stripped",
			in:   "א/ב\\ג|ד",
			want: "אבגד",
		},
		{
			name: "whitespace collapsed and trimmed",
			in:   "  תל \t אביב\n יפו  ",
			want: "תל אביב יפו",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"תל אביב",
		"תל-אביב–יפו",
		`"קריית" גת!`,
		"  Mixed עברית Text  ",
		"‏צה״ל‎",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "normalize not idempotent for %q", in)
	}
}

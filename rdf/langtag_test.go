package rdf

import "testing"

func TestValidateLanguageTag(t *testing.T) {
	tests := []struct {
		tag        string
		wantErr    bool
		wantStrict bool
	}{
		{"en", false, false},
		{"EN-gb", false, false},
		{"zh-Hant-TW", false, false},
		{"de-CH-1996", false, false},
		{"abcdefghi", false, true},
		{"", true, true},
		{"-en", true, true},
		{"en-", true, true},
		{"en--gb", true, true},
		{"1en", true, true},
		{"en gb", true, true},
		{"en_GB", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if err := ValidateLanguageTag(tt.tag); (err != nil) != tt.wantErr {
				t.Errorf("ValidateLanguageTag(%q) error = %v, wantErr %v", tt.tag, err, tt.wantErr)
			}
			if err := ValidateBCP47(tt.tag); (err != nil) != tt.wantStrict {
				t.Errorf("ValidateBCP47(%q) error = %v, wantErr %v", tt.tag, err, tt.wantStrict)
			}
		})
	}
}

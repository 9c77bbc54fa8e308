package quiz

import (
	"reflect"
	"testing"
)

func TestParseSingleChoice(t *testing.T) {
	tests := []struct {
		name string
		raw  RawAnswers
		want Answers
	}{
		{
			name: "valid values",
			raw: RawAnswers{
				"experience":  "beginner",
				"primary-use": "gaming",
				"gpu":         "nvidia",
				"ram":         "16gb",
			},
			want: Answers{
				Experience: ExperienceBeginner,
				PrimaryUse: UseGaming,
				GPU:        GPUNvidia,
				RAM:        RAM16GB,
			},
		},
		{
			name: "unknown values dropped",
			raw: RawAnswers{
				"experience": "guru",
				"gpu":        "voodoo2",
			},
			want: Answers{},
		},
		{
			name: "unknown question ids ignored",
			raw: RawAnswers{
				"favorite-color": "green",
				"experience":     "expert",
			},
			want: Answers{Experience: ExperienceExpert},
		},
		{
			name: "list where scalar expected uses first valid entry",
			raw: RawAnswers{
				"experience": []any{"bogus", "advanced", "none"},
			},
			want: Answers{Experience: ExperienceAdvanced},
		},
		{
			name: "empty input",
			raw:  RawAnswers{},
			want: Answers{},
		},
		{
			name: "nil input",
			raw:  nil,
			want: Answers{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseMultiChoice(t *testing.T) {
	raw := RawAnswers{
		"secondary-uses":        []any{"coding", "bogus", "graphics"},
		"gaming-type":           "competitive", // scalar coerced to list
		"software-requirements": []string{"adobe", "none"},
		"specific-games":        []any{"valorant", "minecraft"},
	}

	a := Parse(raw)

	wantSecondary := []SecondaryUse{SecondaryCoding, SecondaryGraphics}
	if !reflect.DeepEqual(a.SecondaryUses, wantSecondary) {
		t.Errorf("SecondaryUses = %v, want %v", a.SecondaryUses, wantSecondary)
	}
	if len(a.GamingTypes) != 1 || a.GamingTypes[0] != GamingCompetitive {
		t.Errorf("GamingTypes = %v, want [competitive]", a.GamingTypes)
	}
	if !reflect.DeepEqual(a.SpecificGames, []string{"valorant", "minecraft"}) {
		t.Errorf("SpecificGames = %v", a.SpecificGames)
	}
	if !reflect.DeepEqual(a.Software, []Software{SoftwareAdobe, Software("none")}) {
		t.Errorf("Software = %v", a.Software)
	}
}

func TestParseDeterministic(t *testing.T) {
	raw := RawAnswers{
		"experience":  "intermediate",
		"primary-use": "development",
		"gaming-type": []any{"aaa", "indie"},
	}

	first := Parse(raw)
	for i := 0; i < 5; i++ {
		if got := Parse(raw); !reflect.DeepEqual(got, first) {
			t.Fatalf("Parse() not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestGameSelectionNoneSentinel(t *testing.T) {
	a := Answers{SpecificGames: []string{"none"}}
	if got := a.GameSelection(); len(got) != 0 {
		t.Errorf("GameSelection() with 'none' = %v, want empty", got)
	}

	a = Answers{SpecificGames: []string{"valorant"}}
	if got := a.GameSelection(); len(got) != 1 {
		t.Errorf("GameSelection() = %v, want [valorant]", got)
	}
}

func TestSoftwareSelectionNoneSentinel(t *testing.T) {
	a := Answers{Software: []Software{Software("none")}}
	if got := a.SoftwareSelection(); len(got) != 0 {
		t.Errorf("SoftwareSelection() with 'none' = %v, want empty", got)
	}
}

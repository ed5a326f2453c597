package scenario

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		sceneID string
		want    SceneKind
	}{
		{"1-T", KindTitle},
		{"1-Q", KindChoice},
		{"1-E", KindEnding},
		{"1-1", KindDialogue},
		{"1-A-1", KindDialogue},
		{"1-B-3", KindDialogue},
		{"2-T", KindTitle},
		{"12-Q", KindChoice},
		{"1", KindDialogue},
		{"", KindDialogue},
		{"1-t", KindDialogue},
	}
	for _, tc := range cases {
		if got := Classify(tc.sceneID); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.sceneID, got, tc.want)
		}
	}
}

func TestChapter(t *testing.T) {
	cases := []struct {
		sceneID string
		want    string
	}{
		{"1-T", "1"},
		{"12-A-3", "12"},
		{"7", "7"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Chapter(tc.sceneID); got != tc.want {
			t.Errorf("Chapter(%q) = %q, want %q", tc.sceneID, got, tc.want)
		}
	}
}

func TestBranchTarget(t *testing.T) {
	cases := []struct {
		sceneID string
		index   int
		want    string
	}{
		{"1-Q", 0, "1-A-1"},
		{"1-Q", 1, "1-B-1"},
		{"1-Q", 2, "1-C-1"},
		{"3-Q", 0, "3-A-1"},
		{"12-Q", 3, "12-D-1"},
	}
	for _, tc := range cases {
		if got := BranchTarget(tc.sceneID, tc.index); got != tc.want {
			t.Errorf("BranchTarget(%q, %d) = %q, want %q", tc.sceneID, tc.index, got, tc.want)
		}
	}
}

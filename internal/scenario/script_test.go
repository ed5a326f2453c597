package scenario

import "testing"

func testScript() *Script {
	return NewScript([]Row{
		{SceneID: "1-T", Text: "第一章"},
		{SceneID: "1-1", Text: "a"},
		{SceneID: "1-Q", Text: "A x\nB y"},
		{SceneID: "1-A-1", Text: "b"},
		{SceneID: "1-E", Text: "完"},
	})
}

func TestNewScriptClassifies(t *testing.T) {
	script := testScript()
	wants := []SceneKind{KindTitle, KindDialogue, KindChoice, KindDialogue, KindEnding}
	for i, want := range wants {
		if got := script.Row(i).Kind; got != want {
			t.Errorf("row %d kind = %s, want %s", i, got, want)
		}
	}
}

func TestRowsReturnsCopy(t *testing.T) {
	script := testScript()
	rows := script.Rows()
	rows[0].Text = "mutated"
	if script.Row(0).Text == "mutated" {
		t.Error("Rows() must not alias internal storage")
	}
}

func TestIndexOf(t *testing.T) {
	script := testScript()
	if got := script.IndexOf("1-A-1"); got != 3 {
		t.Errorf("IndexOf(1-A-1) = %d, want 3", got)
	}
	if got := script.IndexOf("9-Z-9"); got != -1 {
		t.Errorf("IndexOf(missing) = %d, want -1", got)
	}
}

package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"luminas/internal/scenario"
)

// SampleRows returns the eleven-row sample scenario: a title card, dialogue,
// a two-way choice, both branches, and a chapter end.
func SampleRows() []scenario.Row {
	return []scenario.Row{
		{SceneID: "1-T", Text: "第一章 新しい朝", Background: "bg_1_morning_bed.png"},
		{SceneID: "1-1", Speaker: "天波たくみ", Text: "おはよう！\nもー、今日もお寝坊さん？", Background: "bg_1_morning_bed.png"},
		{SceneID: "1-2", Speaker: "Astrolabe", Text: "別に寝てたっていいじゃん。\n学校があるわけでも、仕事があるわけでもないんだしさ", Background: "bg_myroom_1.png", PortraitCenter: "sp_astrolabe_jitome.png"},
		{SceneID: "1-Q", Text: "A 実は今日から学校に行くことになりました！\nB それもそうだね", Background: "bg_myroom_1.png"},
		{SceneID: "1-A-1", Speaker: "天波たくみ", Text: "実は、伝えたいことがあって。\n今日からね。あなたは。", Background: "bg_myroom_1.png"},
		{SceneID: "1-A-2", Speaker: "Astrolabe", Text: "ごくり。。.", Background: "bg_myroom_1.png", PortraitLeft: "sp_amanamitakumi_smile.png", PortraitRight: "sp_astrolabe_jitome.png"},
		{SceneID: "1-A-3", Speaker: "天波たくみ", Text: "学校に行くことになりました！", Background: "bg_myroom_1.png", PortraitLeft: "sp_amanamitakumi_smile.png"},
		{SceneID: "1-B-1", Speaker: "天波たくみ", Text: "そりゃそうだ。\nでもさ、学校とか行ってみない？", Background: "bg_myroom_1.png", PortraitLeft: "sp_amanamitakumi_nigawarai.png"},
		{SceneID: "1-B-2", Speaker: "Astrolabe", Text: "めんどくさいなぁ", Background: "bg_myroom_1.png", PortraitLeft: "sp_amanamitakumi_ase.png", PortraitRight: "sp_astrolabe_jitome.png"},
		{SceneID: "1-B-3", Speaker: "天波たくみ", Text: "そこをなんとか！\nというか、学校って楽しいところだよ？", Background: "bg_myroom_1.png", PortraitLeft: "sp_amanamitakumi_ase.png", PortraitRight: "sp_astrolabe_jitome.png"},
		{SceneID: "1-E", Text: "第一章 完"},
	}
}

// SampleScript returns the sample rows as a classified script.
func SampleScript() *scenario.Script {
	return scenario.NewScript(SampleRows())
}

// WriteScriptCSV writes rows as a comma-delimited UTF-8 script file.
func WriteScriptCSV(t testing.TB, path string, rows []scenario.Row) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{
		"scene_id", "person_name", "text", "effect",
		"background_image", "center_standing_portrait_image",
		"left_standing_portrait_image", "right_standing_portrait_image",
		"sounds", "bgm",
	}
	if err := writer.Write(header); err != nil {
		t.Fatal(err)
	}
	for _, row := range rows {
		record := []string{
			row.SceneID, row.Speaker, row.Text, row.Effect,
			row.Background, row.PortraitCenter,
			row.PortraitLeft, row.PortraitRight,
			row.Sound, row.Music,
		}
		if err := writer.Write(record); err != nil {
			t.Fatal(err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		t.Fatal(err)
	}
}

// TinyPNG is a 1x1 transparent PNG used as a stand-in asset payload.
var TinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// WriteAsset drops payload at dir/name, creating dir as needed.
func WriteAsset(t testing.TB, dir, name string, payload []byte) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

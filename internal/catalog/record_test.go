package catalog

import (
	"testing"

	"gcmatome/internal/components/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	rec := telemetry.NewRecorder()
	builder := NewBuilder(rec)

	rows := rows(t, labelTable(
		[2]string{"発売日", "2019年7月19日"},
		[2]string{"発売元", "スクウェア・エニックス"},
	))
	record := builder.Build("Title X", nil, rows)

	expected := GameRecord{
		Title:       "Title X",
		PublishedAt: &Date{Year: 2019, Month: 7, Day: 19},
		Publisher:   ptr("スクウェア・エニックス"),
	}
	if diff := cmp.Diff(expected, record); diff != "" {
		t.Fatal(diff)
	}

	// absent genre and image are only debug reports
	require.Empty(t, rec.Reports(telemetry.LEVEL_WARNING, ""))
	require.Len(t, rec.Reports(telemetry.LEVEL_DEBUG, "field not found"), 2)

	again := builder.Build("Title X", nil, rows)
	if diff := cmp.Diff(record, again); diff != "" {
		t.Fatal("build is not idempotent", diff)
	}
}

func TestBuildFullRecord(t *testing.T) {
	builder := NewBuilder(telemetry.NewRecorder())
	hardware := []string{"switch"}

	record := builder.Build("ゼルダの伝説", hardware, rows(t, labelTable(
		[2]string{"画像", `<img data-original="https://img.atwiki.jp/zelda.jpg">`},
		[2]string{"ジャンル", "アクションアドベンチャー"},
		[2]string{"発売・開発元", "任天堂"},
		[2]string{"発売日", "2017年3月3日"},
	)))

	expected := GameRecord{
		Title:       "ゼルダの伝説",
		Genre:       ptr("アクションアドベンチャー"),
		PublishedAt: &Date{Year: 2017, Month: 3, Day: 3},
		Publisher:   ptr("任天堂"),
		Hardware:    []string{"switch"},
		ImageURL:    ptr("https://img.atwiki.jp/zelda.jpg"),
	}
	if diff := cmp.Diff(expected, record); diff != "" {
		t.Fatal(diff)
	}

	hardware[0] = "wiiu"
	require.Equal(t, []string{"switch"}, record.Hardware)
}

func TestBuildMalformedFieldsContinue(t *testing.T) {
	rec := telemetry.NewRecorder()
	builder := NewBuilder(rec)

	record := builder.Build("Title Y", nil, rows(t, labelTable(
		[2]string{"ジャンル", "パズル"},
		[2]string{"発売日", "未定"},
		[2]string{"発売元", "コナミ"},
	)))

	require.Nil(t, record.PublishedAt)
	require.Equal(t, "パズル", *record.Genre)
	require.Equal(t, "コナミ", *record.Publisher)

	warnings := rec.Reports(telemetry.LEVEL_WARNING, report_builder_extract_field)
	require.Len(t, warnings, 1)
	require.Equal(t, "catalog: "+report_builder_extract_field, warnings[0].Id)
	require.Equal(t, []any{"Title Y", FIELD_PUBLISHED_AT, "未定"}, warnings[0].Params[1:])
}

func TestExtractReturnsFieldErrors(t *testing.T) {
	builder := NewBuilder(telemetry.NewRecorder())

	_, errs := builder.Extract("Title Z", nil, nil)
	require.Len(t, errs, 4)
	for _, err := range errs {
		require.Equal(t, FIELD_NOT_FOUND, err.Kind)
	}
}

func TestBuildFromDocument(t *testing.T) {
	rec := telemetry.NewRecorder()
	builder := NewBuilder(rec)

	record := builder.BuildFromDocument("Title X", []string{"ps4"}, parse(t, "<p>moved</p>"))
	if diff := cmp.Diff(GameRecord{Title: "Title X", Hardware: []string{"ps4"}}, record); diff != "" {
		t.Fatal(diff)
	}
	require.Len(t, rec.Reports(telemetry.LEVEL_WARNING, report_builder_detail_table), 1)

	record = builder.BuildFromDocument("Title X", nil, parse(t,
		labelTable([2]string{"ジャンル", "RPG"})+labelTable([2]string{"ジャンル", "ACT"}),
	))
	require.Equal(t, "RPG", *record.Genre)
}

package utils

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("LAWDOCS_TEST_STR", "value")
	t.Setenv("LAWDOCS_TEST_BLANK", "   ")

	if got := GetEnv("LAWDOCS_TEST_STR", "fallback", nil); got != "value" {
		t.Fatalf("got=%q", got)
	}
	if got := GetEnv("LAWDOCS_TEST_MISSING", "fallback", nil); got != "fallback" {
		t.Fatalf("got=%q", got)
	}
	if got := GetEnv("LAWDOCS_TEST_BLANK", "fallback", nil); got != "fallback" {
		t.Fatalf("blank value got=%q", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("LAWDOCS_TEST_INT", " 42 ")
	t.Setenv("LAWDOCS_TEST_NOT_INT", "abc")

	if got := GetEnvAsInt("LAWDOCS_TEST_INT", 7, nil); got != 42 {
		t.Fatalf("got=%d", got)
	}
	if got := GetEnvAsInt("LAWDOCS_TEST_NOT_INT", 7, nil); got != 7 {
		t.Fatalf("got=%d", got)
	}
	if got := GetEnvAsInt("LAWDOCS_TEST_MISSING", 7, nil); got != 7 {
		t.Fatalf("got=%d", got)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("LAWDOCS_TEST_BOOL", "true")
	t.Setenv("LAWDOCS_TEST_NOT_BOOL", "sure")

	if got := GetEnvAsBool("LAWDOCS_TEST_BOOL", false, nil); !got {
		t.Fatal("got=false")
	}
	if got := GetEnvAsBool("LAWDOCS_TEST_NOT_BOOL", true, nil); !got {
		t.Fatal("unparsable value should keep default")
	}
	if got := GetEnvAsBool("LAWDOCS_TEST_MISSING", true, nil); !got {
		t.Fatal("missing value should keep default")
	}
}

package textnorm

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{
			"content preserved",
			"Working on the parser implementation\nAdding tests for edge cases",
			"Working on the parser implementation\nAdding tests for edge cases",
		},
		{
			"short lines dropped",
			"ab\nWorking on the parser implementation\nx",
			"Working on the parser implementation",
		},
		{
			"branch name lines dropped",
			"main\nfeature-login-flow\nactual commit message body here",
			"actual commit message body here",
		},
		{
			"menu bar fragment removed",
			"File Edit\nreviewing the deployment checklist",
			"reviewing the deployment checklist",
		},
		{
			"japanese menu removed",
			"ファイル 編集\n今日の作業メモをまとめる",
			"今日の作業メモをまとめる",
		},
		{
			"bare symbols dropped",
			"●●●\nterminal session output continues here",
			"terminal session output continues here",
		},
		{
			"calendar digits dropped",
			"12\n25\nmeeting notes from the weekly sync",
			"meeting notes from the weekly sync",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Clean(tc.input)
			if got != tc.want {
				t.Errorf("Clean(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"File Edit\nWorking on the parser implementation\nab\nmain",
		"ソース管理\nプロジェクトの進捗を確認する\n●",
		strings.Repeat("some real content line here\n", 5),
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent:\nonce:  %q\ntwice: %q", once, twice)
		}
	}
}

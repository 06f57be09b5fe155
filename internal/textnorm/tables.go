package textnorm

import "regexp"

// menuNoisePatterns strip application chrome and widget text anywhere in the
// OCR dump. They run in multiline case-insensitive mode, in order, before
// line filtering. These mirror the UI furniture Vision reliably picks up on
// macOS: menu bars, sidebars, calendar widgets, X/Twitter navigation, git
// history panes, and editor status bars.
var menuNoisePatterns = compilePatterns([]string{
	// macOS menu bar (shared across apps)
	`^(Ghostty|Chrome|Obsidian|Slack|Finder|Safari|Arc|Electron|Code|Cursor)\s*$`,
	`ファイル\s+編集`,
	`File\s+Edit`,
	`履歴\s+ブックマーク`,
	`プロファイル\s+タブ`,
	`ウィンドウ\s+ヘルプ`,
	`Window\s+Help`,
	`Insert\s+Format`,

	// Sidebar UI elements
	`エクスプローラー`,
	`ソース管理`,
	`アウトライン`,
	`タイムライン`,
	`フォルダー`,
	`[<＜]\s*グラフ`,
	`[<＜]\s*変更`,
	`Generate fa`,

	// Calendar widget
	`W\d{1,2}\s+W\d{1,2}`,
	`Q[1-4]\s+\d{4}`,
	`Today\s*>>`,

	// X/Twitter navigation (whole-line)
	`^ホーム\s*$`,
	`^話題を検索\s*$`,
	`^通知\s*$`,
	`^チャット\s*$`,
	`^Grok\s*$`,
	`^リスト\s*$`,
	`^ブックマーク\s*$`,
	`^コミュニティ\s*$`,
	`^X\s+プレミアム`,
	`^プロフィール\s*$`,
	`^もっと見る\s*$`,
	`^ポストする\s*$`,
	`^トレンド\s*$`,
	`^本日のニュース`,
	`プレミアムにサブスクライブ`,
	`サブスクライブして新機能`,
	`^購入する\s*$`,
	`「いま」を見つけよう`,
	`件のポスト\s*$`,
	`^おすすめ\s*$`,
	`^フォロー中\s*$`,
	`^保存済み\s*$`,
	`^日本のトレンド`,

	// Git history / commit log panes
	`^[●•]\s*(docs|feat|fix|chore|refactor|test|style|perf|ci|build|revert):`,
	`^→?origin/`,
	`^[）\)]\s*feature/`,

	// VS Code / Cursor UI
	`accept edits`,
	`shift\+tab to cycle`,
	`\d+,\d+\s*ワード`,
	`\d+\s*文字`,
	`\d+\s*バックリンク`,
	`^on\s*$`,

	// Date/time widgets
	`\d{1,2}月\d{1,2}日（[月火水木金土日]）\s*\d{1,2}:\d{2}`,

	// Misc UI fragments
	`^80\s*$`,
	`^あ\s*$`,
	`^¢\s*$`,
	`^田\s*$`,
	`^8自動\s*$`,
	`^と\s*$`,
})

// lineNoisePatterns drop whole lines that survived pattern removal but carry
// no content: bare symbols, single letters, calendar digits, menu labels.
var lineNoisePatterns = compilePatterns([]string{
	`^[<>｜|＞＜くＡ]+\s*$`,
	`^[A-Za-z]\s*$`,
	`^[ァ-ヶー]+$`,
	`^\d{1,2}\s*$`,
	`^[★☆♥❤︎●○◆◇■□▶▷◎⑦目口]+\s*$`,
	`^[\s\-_=+*#♥]+$`,
	`^[）\)]\s*\.\.\.\s*$`,
	`^=\s*[a-z]+\s*$`,
	`^8%\s*`,
	`^Q\s*$`,
	`^く変更\s*$`,
	`^[♥●•]\s*コミット`,
	`^口\s+ブックマーク`,
	`^\d+\s+プロフィール`,
	`^表示\s*$`,
	`^履歴\s*$`,
	`^編集\s*$`,
	`^ファイル\s*$`,
	`^main\s*$`,
	`^feature-.*$`,
})

func compilePatterns(patterns []string) []*regexp.Regexp {
	result := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?im)" + p)
		if err == nil {
			result = append(result, re)
		}
	}
	return result
}

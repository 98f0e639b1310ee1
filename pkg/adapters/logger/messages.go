package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages
		"Starting pipeline":               "パイプラインを開始します",
		"Loaded %d frames":                "%d フレームを読み込みました",
		"Negotiated %s for %d frames":     "%s をネゴシエーションしました (%d フレーム)",
		"Wrote %s":                        "%s を書き出しました",
		"Output saved to %s":              "出力を %s に保存しました",
		"Summary saved to %s":             "サマリーを %s に保存しました",
		"Pipeline completed successfully": "パイプラインが正常に完了しました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",

		// Source stage
		"Loading %d input files":             "%d 個の入力ファイルを読み込み中",
		"Loaded %s (%dx%d) as frame %d [%s]": "%s (%dx%d) をフレーム %d として読み込みました [%s]",
		"Skipping unsupported file %s":       "未対応のファイル %s をスキップします",
		"Generating %d %s frames at %dx%d":   "%d フレームの %s パターンを %dx%d で生成中",

		// Negotiate stage
		"Negotiated %s to %s":                    "%s から %s へネゴシエーションしました",
		"Unit sizes: %d bytes in, %d bytes out": "ユニットサイズ: 入力 %d バイト, 出力 %d バイト",

		// Convert stage
		"Converting %d frames with %d workers": "%d フレームを %d ワーカーで変換中",
		"Converted frame %d [%s]":              "フレーム %d を変換しました [%s]",
		"Conversion completed":                 "変換が完了しました",

		// Element
		"Configured for caps %s to %s":                   "caps %s から %s に設定しました",
		"Transformed caps from %s to %s in direction %s": "方向 %[3]s で caps を %[1]s から %[2]s に変換しました",
		"Failed to parse input caps: %s":                 "入力 caps の解析に失敗しました: %s",
		"Failed to parse output caps: %s":                "出力 caps の解析に失敗しました: %s",
		"Have no state yet":                              "まだ状態がありません",
		"Stopped":                                        "停止しました",

		// Errors
		"Failed to load frames: %s":       "フレームの読み込みに失敗しました: %s",
		"Failed to negotiate caps: %s":    "caps のネゴシエーションに失敗しました: %s",
		"Failed to convert frames: %s":    "フレームの変換に失敗しました: %s",
		"Failed to write output: %s":      "出力の書き込みに失敗しました: %s",
		"Failed to save debug output: %s": "デバッグ出力の保存に失敗しました: %s",
	})
}

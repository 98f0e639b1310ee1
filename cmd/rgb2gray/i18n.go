package main

import (
	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"
)

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// CLI
		"Convert BGRx video frames to grayscale": "BGRx 映像フレームをグレースケールに変換します",
		"rgb2gray version %s":                    "rgb2gray バージョン %s",
		"Caps on the %s pad:":                    "%s パッドの caps:",
		"Fixated: %s":                            "固定化: %s",
		"Unit size: %d bytes":                    "ユニットサイズ: %d バイト",

		// Help
		"Convert image files to grayscale frames":        "画像ファイルをグレースケールフレームに変換",
		"Convert a generated test pattern":               "生成したテストパターンを変換",
		"Show the caps the element offers for given caps": "指定した caps に対してエレメントが提示する caps を表示",
		"Show version information":                       "バージョン情報を表示",
		"YAML config file":                               "YAML 設定ファイル",
		"Output directory":                               "出力ディレクトリ",
		"Output pixel format (GRAY8 or BGRx)":            "出力ピクセルフォーマット (GRAY8 または BGRx)",
		"Output image format (png, jpeg, bmp, tiff)":     "出力画像フォーマット (png, jpeg, bmp, tiff)",
		"JPEG quality (1-100)":                           "JPEG 品質 (1-100)",
		"Write a Markdown run summary to this path":      "Markdown の実行サマリーをこのパスに書き出す",
		"Row alignment in bytes":                         "行アライメント (バイト)",
		"Number of conversion workers (0 = CPU count)":   "変換ワーカー数 (0 = CPU 数)",
		"Framerate as n/d":                               "フレームレート (n/d)",
		"Save negotiation and frame buffers":             "ネゴシエーション結果とフレームバッファを保存",
		"Directory for debug output":                     "デバッグ出力ディレクトリ",
		"Log level (debug, info, warn, error)":           "ログレベル (debug, info, warn, error)",
		"Log format (console, json)":                     "ログ形式 (console, json)",
		"Suppress all log output":                        "ログ出力をすべて抑制",
		"Image files or directories":                     "画像ファイルまたはディレクトリ",
		"Frame width":                                    "フレーム幅",
		"Frame height":                                   "フレーム高さ",
		"Number of frames":                               "フレーム数",
		"Pattern (bars, gradient, checkers)":             "パターン (bars, gradient, checkers)",
		"Caps string, e.g. video/x-raw,format=BGRx,width=320,height=240": "caps 文字列 (例: video/x-raw,format=BGRx,width=320,height=240)",
		"Pad the caps belong to (sink or src)":           "caps が属するパッド (sink または src)",
		"Optional filter caps":                           "フィルター caps (任意)",

		// Summary labels
		"Conversion Summary": "変換サマリー",
		"Generated":          "生成日時",
		"Source":             "ソース",
		"Settings":           "設定",
		"Negotiations":       "ネゴシエーション",
		"Output":             "出力",
		"None":               "なし",
		"Item":               "項目",
		"Value":              "値",
		"Test Pattern":       "テストパターン",
		"Inputs":             "入力",
		"Frames":             "フレーム",
		"Output Format":      "出力フォーマット",
		"Image Format":       "画像フォーマット",
		"Framerate":          "フレームレート",
		"Row Alignment":      "行アライメント",
		"Workers":            "ワーカー",
		"Size":               "サイズ",
		"Input Caps":         "入力 caps",
		"Output Caps":        "出力 caps",
		"Input Unit":         "入力ユニット",
		"Output Unit":        "出力ユニット",
		"Directory":          "ディレクトリ",
		"Files":              "ファイル",
		"Input Bytes":        "入力バイト",
		"Output Bytes":       "出力バイト",
		"Output/Input Ratio": "出力/入力 比率",
		"Processing Time":    "処理時間",
	})
}

// helpVars resolves the ${help_*} placeholders in the CLI struct tags.
func helpVars() kong.Vars {
	return kong.Vars{
		"help_convert":       l10n.T("Convert image files to grayscale frames"),
		"help_testsrc":       l10n.T("Convert a generated test pattern"),
		"help_caps":          l10n.T("Show the caps the element offers for given caps"),
		"help_version":       l10n.T("Show version information"),
		"help_config":        l10n.T("YAML config file"),
		"help_output":        l10n.T("Output directory"),
		"help_format":        l10n.T("Output pixel format (GRAY8 or BGRx)"),
		"help_image_format":  l10n.T("Output image format (png, jpeg, bmp, tiff)"),
		"help_jpeg_quality":  l10n.T("JPEG quality (1-100)"),
		"help_summary":       l10n.T("Write a Markdown run summary to this path"),
		"help_row_alignment": l10n.T("Row alignment in bytes"),
		"help_workers":       l10n.T("Number of conversion workers (0 = CPU count)"),
		"help_framerate":     l10n.T("Framerate as n/d"),
		"help_debug":         l10n.T("Save negotiation and frame buffers"),
		"help_debug_dir":     l10n.T("Directory for debug output"),
		"help_log_level":     l10n.T("Log level (debug, info, warn, error)"),
		"help_log_format":    l10n.T("Log format (console, json)"),
		"help_quiet":         l10n.T("Suppress all log output"),
		"help_inputs":        l10n.T("Image files or directories"),
		"help_width":         l10n.T("Frame width"),
		"help_height":        l10n.T("Frame height"),
		"help_frames":        l10n.T("Number of frames"),
		"help_pattern":       l10n.T("Pattern (bars, gradient, checkers)"),
		"help_caps_arg":      l10n.T("Caps string, e.g. video/x-raw,format=BGRx,width=320,height=240"),
		"help_direction":     l10n.T("Pad the caps belong to (sink or src)"),
		"help_filter":        l10n.T("Optional filter caps"),
	}
}

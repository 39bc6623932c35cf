package ui

import "github.com/gdamore/tcell/v2"

// Theme holds color constants for the TUI.
type Theme struct {
	BgColor           tcell.Color
	FgColor           tcell.Color
	BorderColor       tcell.Color
	BorderFocusColor  tcell.Color
	TableHeaderFg     tcell.Color
	TableHeaderBg     tcell.Color
	TableCursorFg     tcell.Color
	TableCursorBg     tcell.Color
	CrumbActiveFg     tcell.Color
	CrumbActiveBg     tcell.Color
	CrumbInactiveFg   tcell.Color
	CrumbInactiveBg   tcell.Color
	MenuKeyColor      tcell.Color
	NumericKeyColor   tcell.Color
	TitleColor        tcell.Color
	CounterColor      tcell.Color
	FlashInfoColor    tcell.Color
	FlashWarnColor    tcell.Color
	FlashErrColor     tcell.Color
	PromptBorderColor tcell.Color
	SelfMessageColor  tcell.Color
	OtherMessageColor tcell.Color
	OnlineColor       tcell.Color
	MissedColor       tcell.Color
	AccentColor       tcell.Color
}

// DefaultTheme returns the dark DAMRU theme.
func DefaultTheme() *Theme {
	return &Theme{
		BgColor:           tcell.ColorBlack,
		FgColor:           tcell.ColorWheat,
		BorderColor:       tcell.ColorDarkOrange,
		BorderFocusColor:  tcell.ColorOrange,
		TableHeaderFg:     tcell.ColorWhite,
		TableHeaderBg:     tcell.ColorBlack,
		TableCursorFg:     tcell.ColorBlack,
		TableCursorBg:     tcell.ColorOrange,
		CrumbActiveFg:     tcell.ColorBlack,
		CrumbActiveBg:     tcell.ColorOrange,
		CrumbInactiveFg:   tcell.ColorBlack,
		CrumbInactiveBg:   tcell.ColorTan,
		MenuKeyColor:      tcell.ColorDarkOrange,
		NumericKeyColor:   tcell.ColorFuchsia,
		TitleColor:        tcell.ColorOrange,
		CounterColor:      tcell.ColorPapayaWhip,
		FlashInfoColor:    tcell.ColorNavajoWhite,
		FlashWarnColor:    tcell.ColorOrange,
		FlashErrColor:     tcell.ColorOrangeRed,
		PromptBorderColor: tcell.ColorDarkOrange,
		SelfMessageColor:  tcell.ColorLightGreen,
		OtherMessageColor: tcell.ColorLightSkyBlue,
		OnlineColor:       tcell.ColorLimeGreen,
		MissedColor:       tcell.ColorRed,
		AccentColor:       tcell.ColorGold,
	}
}

package decoder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	PrintToggle            = false
	LevelTrace  slog.Level = slog.LevelInfo + 1
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

func PrintState(state *decoderState) {
	if !PrintToggle {
		return
	}

	t := table.NewWriter()
	t.SetTitle("Decoder Outputs")
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"start", state.Start})
	t.AppendRow(table.Row{"shape_type", fmt.Sprintf("0x%X", state.ShapeType)})
	t.AppendRow(table.Row{"x0", state.X0})
	t.AppendRow(table.Row{"y0", state.Y0})
	t.AppendRow(table.Row{"x1", state.X1})
	t.AppendRow(table.Row{"y1", state.Y1})
	t.AppendRow(table.Row{"x2", state.X2})
	t.AppendRow(table.Row{"y2", state.Y2})
	t.AppendRow(table.Row{"fill_enable", state.FillEnable})
	t.AppendRow(table.Row{"color", fmt.Sprintf("0x%06X", state.Color)})
	t.AppendRow(table.Row{"bg_color", fmt.Sprintf("0x%06X", state.BgColor)})

	fmt.Println(t.Render())
}

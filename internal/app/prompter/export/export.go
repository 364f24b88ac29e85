package export

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/tealeg/xlsx"

	"whisper-prompting/internal/app/model"
)

var header = []string{
	"ID", "File", "Prompt Source", "Prompt", "Instruction",
	"Transcript", "Audio Duration", "Created At", "Error",
}

// ToExcel writes recorded transcription runs to an xlsx workbook so prompt
// variants can be eyeballed next to their transcripts.
func ToExcel(transcripts []model.Transcript, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcripts")
	if err != nil {
		return fmt.Errorf("add sheet failed: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range header {
		headerRow.AddCell().Value = h
	}

	rows := lo.Map(transcripts, func(t model.Transcript, _ int) []string {
		return []string{
			fmt.Sprint(t.ID),
			t.FileName,
			t.PromptSource,
			t.Prompt,
			t.Instruction,
			t.Transcript,
			fmt.Sprintf("%.2f", t.AudioDuration),
			t.CreatedAt.Format(time.RFC3339),
			t.ErrorMessage,
		}
	})

	for _, values := range rows {
		row := sheet.AddRow()
		for _, v := range values {
			row.AddCell().Value = v
		}
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("save workbook failed: %w", err)
	}
	return nil
}

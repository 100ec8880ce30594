package rewritecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	processFileMessageType      = "hugoprep.rewrite.process_file"
	processDirectoryMessageType = "hugoprep.rewrite.process_directory"
)

// ProcessFileCommand rewrites a single Markdown file. Output defaults to the
// input path when empty, matching the CLI's in-place mode.
type ProcessFileCommand struct {
	// Input is the Markdown file to transform.
	Input string `json:"input"`
	// Output is the destination path; empty means rewrite in place.
	Output string `json:"output,omitempty"`
}

// Type implements command.Message.
func (ProcessFileCommand) Type() string { return processFileMessageType }

// Validate ensures the input path is present before handlers execute.
func (cmd ProcessFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Input, validation.Required, validation.By(notBlank("hugoprep.rewrite.process_file.input_required", "input is required"))),
	)
}

// ProcessDirectoryCommand rewrites every *.md file directly inside InputDir
// into OutputDir. Batch mode always requires an explicit output directory.
type ProcessDirectoryCommand struct {
	// InputDir is the directory holding the Markdown files to transform.
	InputDir string `json:"input_dir"`
	// OutputDir receives the transformed files under the same base names.
	OutputDir string `json:"output_dir"`
}

// Type implements command.Message.
func (ProcessDirectoryCommand) Type() string { return processDirectoryMessageType }

// Validate ensures both directories are present before handlers execute.
func (cmd ProcessDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.InputDir, validation.Required, validation.By(notBlank("hugoprep.rewrite.process_directory.input_dir_required", "input dir is required"))),
		validation.Field(&cmd.OutputDir, validation.Required, validation.By(notBlank("hugoprep.rewrite.process_directory.output_dir_required", "output dir is required"))),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if s, _ := value.(string); strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

// apidoc renders API endpoint documentation from YAML or JSON descriptors.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/viper"

	"github.com/woozymasta/apidoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/apidoc"
	_buildTime string
)

// cliOptions describes apidoc CLI flags and subcommands.
type cliOptions struct {
	Global globalFlags `group:"Global"`

	Version   versionCommand   `command:"version" description:"Print version information"`
	Config    configCommand    `command:"config" description:"Print config file with default values"`
	Template  templateCommand  `command:"template" description:"Print built-in markdown template"`
	Normalize normalizeCommand `command:"normalize" description:"Repair one code fragment"`
	Highlight highlightCommand `command:"highlight" description:"Normalize and highlight one code fragment"`
	Render    renderCommand    `command:"render" description:"Render descriptor to markdown, html or terminal text"`
}

// globalFlags groups flags shared by all subcommands.
type globalFlags struct {
	ConfigPath string `short:"c" long:"config" description:"Path to YAML config file with render defaults"`
}

// renderFlags groups document rendering flags; empty values fall back to config.
type renderFlags struct {
	TemplateName  string `short:"t" long:"template" description:"Built-in template style (page, compact)"`
	TemplatePath  string `short:"f" long:"template-file" description:"Path to custom markdown template (.gotmpl)"`
	Title         string `short:"T" long:"title" description:"Document title"`
	Format        string `short:"F" long:"format" description:"Output format (markdown, html, terminal)"`
	ListMarker    string `short:"l" long:"list-marker" description:"Unordered list marker for normalized descriptions" choice:"-" choice:"*"`
	PayloadFormat string `long:"payload-format" description:"Generated payload format (json, yaml)"`
	SectionOrder  string `short:"s" long:"section-order" description:"Section priority map for all endpoints (hotel, groups)"`
	Only          string `short:"o" long:"only" description:"Keep endpoints whose title or signature fuzzy-matches pattern"`
	WrapWidth     int    `short:"w" long:"wrap" description:"Wrap width for plain text descriptions"`
	Payloads      bool   `short:"p" long:"payloads" description:"Generate response payloads from response parameters"`
}

// templateSelectFlags groups built-in template selection flags.
type templateSelectFlags struct {
	TemplateName string `short:"t" long:"template" description:"Built-in template style" choice:"page" choice:"compact" default:"page"`
}

// renderCommand converts descriptor to documentation.
type renderCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input descriptor file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	RenderFlags renderFlags `group:"Render"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(command.RenderFlags, command.Args.Input, command.Args.Output)
}

// highlightCommand prints highlighted markup for one fragment.
type highlightCommand struct {
	runner *cliRunner
	Args   struct {
		Input string `positional-arg-name:"input" description:"Input fragment file path (optional; stdin when omitted)"`
	} `positional-args:"yes"`

	Language string `short:"L" long:"lang" description:"Fragment language tag (http, bash, json)" required:"yes"`
}

// Execute runs highlight subcommand.
func (command *highlightCommand) Execute(_ []string) error {
	return command.runner.runHighlight(command.Language, command.Args.Input)
}

// normalizeCommand prints repaired fragment text.
type normalizeCommand struct {
	runner *cliRunner
	Args   struct {
		Input string `positional-arg-name:"input" description:"Input fragment file path (optional; stdin when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs normalize subcommand.
func (command *normalizeCommand) Execute(_ []string) error {
	return command.runner.runNormalize(command.Args.Input)
}

// templateCommand exports built-in markdown template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateFlags templateSelectFlags `group:"Template Select"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateFlags.TemplateName, command.Args.Output)
}

// configCommand exports config file with defaults.
type configCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output config file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs config subcommand.
func (command *configCommand) Execute(_ []string) error {
	return command.runner.runConfig(command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	global      *globalFlags
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "apidoc"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runRender renders descriptor input and writes result to stdout or file.
func (runner *cliRunner) runRender(renderFlags renderFlags, inputPath, outputPath string) error {
	config := loadConfig(runner.configPath(), runner.stderr)

	data, sourcePath, err := runner.readInput(inputPath, "descriptor", false)
	if err != nil {
		return fmt.Errorf("read descriptor input: %w", err)
	}

	doc, err := apidoc.ParseDocument(data)
	if err != nil {
		return fmt.Errorf("load descriptor: %w", err)
	}

	if pattern := strings.TrimSpace(renderFlags.Only); pattern != "" {
		doc.Endpoints = selectEndpoints(doc.Endpoints, pattern)
		if len(doc.Endpoints) == 0 {
			_, _ = fmt.Fprintf(runner.stderr, "warning: no endpoints match %q\n", pattern)
			return nil
		}
	}

	renderOptions, err := buildRenderOptions(renderFlags, config)
	if err != nil {
		return err
	}

	if sourcePath != stdinSource {
		renderOptions.SourcePath = sourcePath
	}

	rendered, err := apidoc.RenderDocument(doc, renderOptions)
	if err != nil {
		return fmt.Errorf("render %s: %w", renderOptions.Format, err)
	}

	return runner.writeOutput(outputPath, rendered, string(renderOptions.Format))
}

// runHighlight writes highlighted markup of one normalized fragment.
func (runner *cliRunner) runHighlight(language, inputPath string) error {
	data, _, err := runner.readInput(inputPath, "fragment", true)
	if err != nil {
		return fmt.Errorf("read fragment input: %w", err)
	}

	fragment := apidoc.NormalizeFragment(apidoc.CodeFragment{
		Text:     strings.TrimRight(string(data), "\n"),
		Language: strings.TrimSpace(language),
	})

	return runner.writeOutput("", apidoc.HighlightFragment(fragment).Markup+"\n", "markup")
}

// runNormalize writes repaired fragment text.
func (runner *cliRunner) runNormalize(inputPath string) error {
	data, _, err := runner.readInput(inputPath, "fragment", true)
	if err != nil {
		return fmt.Errorf("read fragment input: %w", err)
	}

	return runner.writeOutput("", apidoc.Normalize(strings.TrimRight(string(data), "\n"))+"\n", "fragment")
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := apidoc.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, tpl, "template")
}

// runConfig writes default config file to stdout or file.
func (runner *cliRunner) runConfig(outputPath string) error {
	data, err := defaultConfigYAML()
	if err != nil {
		return err
	}

	return runner.writeOutput(outputPath, string(data), "config")
}

// buildRenderOptions merges render flags over config values.
func buildRenderOptions(renderFlags renderFlags, config *viper.Viper) (apidoc.Options, error) {
	renderOptions := apidoc.Options{
		Title:            firstNonEmpty(renderFlags.Title, config.GetString("title")),
		TemplateName:     firstNonEmpty(renderFlags.TemplateName, config.GetString("template")),
		ListMarker:       firstNonEmpty(renderFlags.ListMarker, config.GetString("list_marker")),
		Format:           apidoc.OutputFormat(firstNonEmpty(renderFlags.Format, config.GetString("format"))),
		PayloadFormat:    apidoc.PayloadFormat(firstNonEmpty(renderFlags.PayloadFormat, config.GetString("payload_format"))),
		SectionOrder:     firstNonEmpty(renderFlags.SectionOrder, config.GetString("section_order")),
		WrapWidth:        renderFlags.WrapWidth,
		GeneratePayloads: renderFlags.Payloads || config.GetBool("payloads"),
	}

	if renderOptions.WrapWidth <= 0 {
		renderOptions.WrapWidth = config.GetInt("wrap")
	}

	if renderOptions.Format == "" {
		renderOptions.Format = apidoc.FormatMarkdown
	}

	templatePath := firstNonEmpty(renderFlags.TemplatePath, config.GetString("template_file"))
	if templatePath != "" {
		customTemplate, err := os.ReadFile(templatePath)
		if err != nil {
			return apidoc.Options{}, fmt.Errorf("read template file %q: %w", templatePath, err)
		}

		renderOptions.TemplateText = string(customTemplate)
	}

	return renderOptions, nil
}

// selectEndpoints keeps endpoints fuzzy-matching pattern in document order.
func selectEndpoints(endpoints []apidoc.Endpoint, pattern string) []apidoc.Endpoint {
	candidates := make([]string, len(endpoints))
	for index, endpoint := range endpoints {
		candidates[index] = endpoint.DisplayTitle() + " " + endpoint.Signature()
	}

	matches := fuzzy.Find(pattern, candidates)
	indexes := make([]int, 0, len(matches))
	for _, match := range matches {
		indexes = append(indexes, match.Index)
	}

	sort.Ints(indexes)

	out := make([]apidoc.Endpoint, 0, len(indexes))
	for _, index := range indexes {
		out = append(out, endpoints[index])
	}

	return out
}

// stdinSource marks input read from stdin.
const stdinSource = "(stdin)"

// readInput reads file path or stdin and returns source marker.
// Blank stdin is an error unless allowEmpty is set.
func (runner *cliRunner) readInput(path, what string, allowEmpty bool) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read %s file %q: %w", what, path, err)
		}

		return data, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read %s from stdin: %w", what, err)
	}

	if !allowEmpty && len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", fmt.Errorf("read %s from stdin: empty input", what)
	}

	return data, stdinSource, nil
}

// writeOutput writes content to stdout or to output file.
func (runner *cliRunner) writeOutput(outputPath, content, what string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, content); err != nil {
			return fmt.Errorf("write %s to stdout: %w", what, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", what, outputPath, err)
	}

	return nil
}

// configPath returns --config value when set.
func (runner *cliRunner) configPath() string {
	if runner.global == nil {
		return ""
	}

	return runner.global.ConfigPath
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	runner.global = &options.Global
	options.Version.runner = runner
	options.Config.runner = runner
	options.Template.runner = runner
	options.Normalize.runner = runner
	options.Highlight.runner = runner
	options.Render.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in markdown template text (`+"`page` or `compact`"+`).
Use it as a starting point for a custom template file.

Examples:
> $ %s template > page.gotmpl
> $ %s template -t compact templates/compact.gotmpl
`, programName, programName)),
		"render": strings.TrimSpace(fmt.Sprintf(`
Render API descriptor to documentation.
Reads descriptor from file argument or stdin; writes result to file argument or stdout.
Unset flags fall back to APIDOC_* environment variables, then --config file values.

Examples:
> $ %s render hotels.yaml > hotels.md
> $ %s render --format html --payloads hotels.yaml hotels.html
> $ cat hotels.yaml | %s render --only "rooms" --format terminal
`, programName, programName, programName)),
		"config": strings.TrimSpace(fmt.Sprintf(`
Print config file with all render keys, their default values and comments.

Examples:
> $ %s config > apidoc.yaml
> $ %s --config apidoc.yaml render hotels.yaml
`, programName, programName)),
		"highlight": strings.TrimSpace(fmt.Sprintf(`
Normalize one code fragment and print it with class spans around recognized tokens.

Examples:
> $ %s highlight --lang http request.txt
> $ echo '{"id": 1}' | %s highlight --lang json
`, programName, programName)),
		"normalize": strings.TrimSpace(fmt.Sprintf(`
Collapse repeated leading verbs and drop repeated "<name>: undefined" lines.

Examples:
> $ printf 'GET GET /x HTTP/1.1\n' | %s normalize
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// printVersionInfo writes build metadata.
func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}

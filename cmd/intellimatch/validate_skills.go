package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/meher4567/intellimatch/internal/observability"
	"github.com/meher4567/intellimatch/internal/schemas"
	"github.com/meher4567/intellimatch/internal/skills"
	"github.com/meher4567/intellimatch/internal/taxonomy"
	"github.com/meher4567/intellimatch/internal/types"
	"github.com/spf13/cobra"
)

var validateSkillsCmd = &cobra.Command{
	Use:   "validate-skills",
	Short: "Validate extracted skill tokens against the taxonomy",
	Long:  "Resolves raw extracted skill tokens to canonical taxonomy skills with provenance and confidence, producing a deduplicated ValidatedSkill JSON.",
	RunE:  runValidateSkills,
}

var (
	validateSkillsTaxonomy string
	validateSkillsTokens   string
	validateSkillsOutput   string
	validateSkillsStop     []string
	validateSkillsVerbose  bool
)

func init() {
	validateSkillsCmd.Flags().StringVarP(&validateSkillsTaxonomy, "taxonomy", "t", "", "Path to taxonomy JSON file (required)")
	validateSkillsCmd.Flags().StringVarP(&validateSkillsTokens, "tokens", "i", "", "Path to input ExtractedToken JSON file (required)")
	validateSkillsCmd.Flags().StringVarP(&validateSkillsOutput, "out", "o", "", "Path to output ValidatedSkill JSON file (default stdout)")
	validateSkillsCmd.Flags().StringSliceVar(&validateSkillsStop, "stop-word", nil, "Additional stop-list entry (repeatable)")
	validateSkillsCmd.Flags().BoolVarP(&validateSkillsVerbose, "verbose", "v", false, "Print a formatted skill summary to stdout")

	if err := validateSkillsCmd.MarkFlagRequired("taxonomy"); err != nil {
		panic(fmt.Sprintf("failed to mark taxonomy flag as required: %v", err))
	}
	if err := validateSkillsCmd.MarkFlagRequired("tokens"); err != nil {
		panic(fmt.Sprintf("failed to mark tokens flag as required: %v", err))
	}

	rootCmd.AddCommand(validateSkillsCmd)
}

func runValidateSkills(_ *cobra.Command, _ []string) error {
	// 1. Validate the taxonomy document against its schema (non-fatal if
	// the schema file cannot be located)
	if schemaPath := schemas.ResolveSchemaPath("schemas/taxonomy.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, validateSkillsTaxonomy); err != nil {
			return fmt.Errorf("taxonomy failed schema validation: %w", err)
		}
	}

	// 2. Load the taxonomy
	tax, err := taxonomy.LoadFile(validateSkillsTaxonomy)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	// 3. Load extracted tokens
	tokens, err := loadTokens(validateSkillsTokens)
	if err != nil {
		return err
	}

	// 4. Validate
	var opts []skills.Option
	if len(validateSkillsStop) > 0 {
		opts = append(opts, skills.WithExtraStopWords(validateSkillsStop))
	}
	validated := skills.NewValidator(tax, opts...).Validate(tokens)

	if validateSkillsVerbose {
		observability.NewPrinter(os.Stdout).PrintValidatedSkills(filepath.Base(validateSkillsTokens), validated)
	}

	// 5. Write output
	out := struct {
		ValidatedSkills []types.ValidatedSkill `json:"validated_skills"`
	}{ValidatedSkills: validated}
	if err := writeJSON(validateSkillsOutput, out); err != nil {
		return err
	}

	if validateSkillsOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Validated %d of %d tokens to %s\n", len(validated), len(tokens), validateSkillsOutput)
	}
	return nil
}

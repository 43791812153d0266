package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/districtlens/districtlens/internal/records"
	"github.com/districtlens/districtlens/internal/store"
)

// ingestFile is the on-disk record bundle the ingest command consumes.
// Any of the three blocks may be omitted.
type ingestFile struct {
	State        *records.StateInput        `json:"state" yaml:"state"`
	Precincts    []records.PrecinctInput    `json:"precincts" yaml:"precincts"`
	Demographics []records.DemographicInput `json:"demographics" yaml:"demographics"`
}

// IngestResult holds ingest results for JSON output.
type IngestResult struct {
	Files        int      `json:"files"`
	States       int      `json:"states"`
	Precincts    int      `json:"precincts"`
	Demographics int      `json:"demographics"`
	Batches      []string `json:"batches,omitempty"`
}

// NewIngestCommand creates the ingest command.
func NewIngestCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest <db> <records-file>...",
		Short: "Load record files into the local database",
		Long: `Load state, precinct, and demographic records into a SQLite database.

Record files are YAML or JSON documents with optional state, precincts,
and demographics blocks. Category keys are validated during parsing:
a record with an unknown region or group key rejects the whole file,
nothing from it is written.

Examples:
  districtlens ingest analytics.db alabama.yaml
  districtlens ingest analytics.db states/*.yaml`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(rootOpts, args[0], args[1:], cmd)
		},
	}

	return cmd
}

func runIngest(opts *RootOptions, dbPath string, files []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("opening database %s", dbPath), err)
	}
	defer st.Close()

	ctx := cmd.Context()
	result := IngestResult{Files: len(files)}

	for _, path := range files {
		bundle, err := loadIngestFile(path)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("loading %s", path), err)
		}

		if bundle.State != nil {
			summary, err := bundle.State.Parse()
			if err != nil {
				return WrapExitError(ExitFailure, path, err)
			}
			if err := st.UpsertState(ctx, summary); err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("writing state %s", summary.ID), err)
			}
			result.States++
			formatter.VerboseLog("upserted state %s", summary.ID)
		}

		if len(bundle.Precincts) > 0 {
			precincts := make([]records.Precinct, 0, len(bundle.Precincts))
			for _, in := range bundle.Precincts {
				p, err := in.Parse()
				if err != nil {
					return WrapExitError(ExitFailure, path, err)
				}
				precincts = append(precincts, p)
			}
			batchID, err := st.IngestPrecincts(ctx, precincts)
			if err != nil {
				return WrapExitError(ExitCommandError, "writing precincts", err)
			}
			result.Precincts += len(precincts)
			result.Batches = append(result.Batches, batchID)
			formatter.VerboseLog("ingested %d precinct(s), batch %s", len(precincts), batchID)
		}

		if len(bundle.Demographics) > 0 {
			// Demographics write per state; group the parsed records first.
			byState := make(map[string][]records.DemographicGroup)
			for _, in := range bundle.Demographics {
				g, err := in.Parse()
				if err != nil {
					return WrapExitError(ExitFailure, path, err)
				}
				byState[in.State] = append(byState[in.State], g)
			}
			states := make([]string, 0, len(byState))
			for s := range byState {
				states = append(states, s)
			}
			sort.Strings(states)
			for _, s := range states {
				batchID, err := st.IngestDemographics(ctx, s, byState[s])
				if err != nil {
					return WrapExitError(ExitCommandError, fmt.Sprintf("writing demographics for %s", s), err)
				}
				result.Demographics += len(byState[s])
				result.Batches = append(result.Batches, batchID)
				formatter.VerboseLog("ingested %d demographic group(s) for %s, batch %s", len(byState[s]), s, batchID)
			}
		}
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "Ingested %d file(s): %d state(s), %d precinct(s), %d demographic group(s)\n",
		result.Files, result.States, result.Precincts, result.Demographics)
	return nil
}

// loadIngestFile parses a record bundle, choosing the decoder by file
// extension (.json is JSON, everything else is YAML).
func loadIngestFile(path string) (*ingestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var bundle ingestFile
	if filepath.Ext(path) == ".json" {
		if err := json.Unmarshal(data, &bundle); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &bundle); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	}
	return &bundle, nil
}

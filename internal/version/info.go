// Package version reports the questctl build and the deployment it targets.
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Set via ldflags:
//
//	-X github.com/altuslabsxyz/questline/internal/version.Version={{.Version}}
//	-X github.com/altuslabsxyz/questline/internal/version.GitCommit={{.FullCommit}}
//	-X github.com/altuslabsxyz/questline/internal/version.BuildDate={{.Date}}
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Target is the ledger deployment a binary is configured against. Empty
// fields are not configured.
type Target struct {
	Network       string `json:"network,omitempty" yaml:"network,omitempty"`
	RPCURL        string `json:"rpc_url,omitempty" yaml:"rpc_url,omitempty"`
	QuestPlatform string `json:"quest_platform,omitempty" yaml:"quest_platform,omitempty"`
	BadgeNFT      string `json:"badge_nft,omitempty" yaml:"badge_nft,omitempty"`
	RewardToken   string `json:"reward_token,omitempty" yaml:"reward_token,omitempty"`
}

func (t Target) contracts() [][2]string {
	var out [][2]string
	for _, c := range [][2]string{
		{"quest_platform", t.QuestPlatform},
		{"badge_nft", t.BadgeNFT},
		{"reward_token", t.RewardToken},
	} {
		if c[1] != "" {
			out = append(out, c)
		}
	}
	return out
}

// Info is the build of a binary plus its configured target.
type Info struct {
	Name      string   `json:"name" yaml:"name"`
	Version   string   `json:"version" yaml:"version"`
	GitCommit string   `json:"commit" yaml:"commit"`
	BuildDate string   `json:"build_date,omitempty" yaml:"build_date,omitempty"`
	GoVersion string   `json:"go" yaml:"go"`
	Target    Target   `json:"target" yaml:"target"`
	BuildDeps []string `json:"build_deps,omitempty" yaml:"build_deps,omitempty"`
}

// NewInfo returns the build info of the named binary.
func NewInfo(name string) Info {
	return Info{
		Name:      name,
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// WithTarget records the deployment the binary is configured for.
func (i Info) WithTarget(t Target) Info {
	i.Target = t
	return i
}

// WithBuildDeps lists the module dependencies compiled into the binary.
func (i Info) WithBuildDeps() Info {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	deps := make([]string, 0, len(buildInfo.Deps))
	for _, dep := range buildInfo.Deps {
		s := dep.Path + "@" + dep.Version
		if dep.Replace != nil {
			s += " => " + dep.Replace.Path + "@" + dep.Replace.Version
		}
		deps = append(deps, s)
	}
	sort.Strings(deps)
	i.BuildDeps = deps
	return i
}

// shortCommit trims a full hash to 7 characters.
func (i Info) shortCommit() string {
	if len(i.GitCommit) > 7 {
		return i.GitCommit[:7]
	}
	return i.GitCommit
}

// String renders a header line followed by the configured target:
//
//	questctl 0.1.0-dev (a1b2c3d, go1.23.4 linux/amd64)
//	network         Test SDF Network ; September 2015
//	rpc             https://soroban-testnet.stellar.org
//	quest_platform  CAAQ...
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s (%s, %s)\n", i.Name, i.Version, i.shortCommit(), i.GoVersion)

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	row := func(k, v string) { fmt.Fprintf(tw, "%s\t%s\n", k, v) }
	if i.Target.Network != "" {
		row("network", i.Target.Network)
	}
	if i.Target.RPCURL != "" {
		row("rpc", i.Target.RPCURL)
	}
	for _, c := range i.Target.contracts() {
		row(c[0], c[1])
	}
	if i.BuildDate != "unknown" && i.BuildDate != "" {
		row("built", i.BuildDate)
	}
	_ = tw.Flush()
	return sb.String()
}

// YAML renders the info, including build deps when set.
func (i Info) YAML() string {
	data, err := yaml.Marshal(i)
	if err != nil {
		return i.String()
	}
	return string(data)
}

// JSON renders the info as indented JSON.
func (i Info) JSON() (string, error) {
	data, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewCmd returns the version command. target, when non-nil, is called at run
// time so the command reflects the loaded config and flags.
func NewCmd(name string, target func() Target) *cobra.Command {
	var long, jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build and the configured network and contracts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := NewInfo(name)
			if target != nil {
				info = info.WithTarget(target())
			}
			if long {
				info = info.WithBuildDeps()
			}

			out := cmd.OutOrStdout()
			switch {
			case jsonOutput:
				s, err := info.JSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			case long:
				fmt.Fprint(out, info.YAML())
			default:
				fmt.Fprint(out, info.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&long, "long", false, "Include build dependencies (YAML)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output JSON")
	return cmd
}

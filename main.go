package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/yggdrasil-community/peers-updater/lib/admin"
	"github.com/yggdrasil-community/peers-updater/lib/confedit"
	"github.com/yggdrasil-community/peers-updater/lib/config"
	"github.com/yggdrasil-community/peers-updater/lib/directory"
	"github.com/yggdrasil-community/peers-updater/lib/latency"
	"github.com/yggdrasil-community/peers-updater/lib/peer"
	"github.com/yggdrasil-community/peers-updater/lib/util"
	"github.com/yggdrasil-community/peers-updater/lib/util/logger"
)

var log = logger.GetLogger()

var opts struct {
	print   bool
	update  bool
	api     bool
	restart bool
	conf    string
	number  uint8
	extra   string
	ignore  string
}

var rootCmd = &cobra.Command{
	Use:   "peers-updater",
	Short: "Refresh the public peer list of an Yggdrasil node",
	Long: `peers-updater downloads the community directory of public Yggdrasil
peers, measures the latency of every candidate and applies the best ones:
printed as a table, patched into yggdrasil.conf in place, or pushed to the
running node through its admin socket.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	cobra.OnInitialize(config.InitConfig)

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.print, "print", "p", false, "print the probed peers and do nothing else")
	flags.BoolVarP(&opts.update, "update-cfg", "u", false, "patch the Peers list in the configuration file")
	flags.BoolVarP(&opts.api, "api", "a", false, "apply the peers to the running node via the admin socket")
	flags.BoolVarP(&opts.restart, "restart", "r", false, "restart the yggdrasil service after updating the file")
	flags.StringVarP(&opts.conf, "config", "c", config.DefaultYggdrasilConfPath(), "path to yggdrasil.conf")
	flags.Uint8VarP(&opts.number, "number", "n", 3, "number of peers to select (0-255)")
	flags.StringVarP(&opts.extra, "extra", "e", "", "space-delimited peers to always include")
	flags.StringVarP(&opts.ignore, "ignore", "i", "", "space-delimited peers to exclude from selection")
	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "settings", "", "path to the updater's own settings file")
}

func run(cmd *cobra.Command, args []string) error {
	if !(opts.print || opts.update || opts.api) {
		fmt.Println("Parameters expected: '-p' or '-u' and (or) '-a'.")
		fmt.Println("For more information try '-h'.")
		fmt.Println("Nothing to do, exit.")
		return nil
	}

	if !opts.print {
		if !util.CheckFileExists(opts.conf) {
			return fmt.Errorf("the Yggdrasil configuration file %s does not exist", opts.conf)
		}
		if err := util.CheckFileWritable(opts.conf); err != nil {
			return fmt.Errorf("there is no write access to the Yggdrasil configuration file (%s)", err)
		}
	}

	cfg := config.NewUpdaterConfigFromViper()
	peers, err := discoverPeers(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if opts.print {
		printPeers(peers)
		return nil
	}

	text, err := os.ReadFile(opts.conf)
	if err != nil {
		return fmt.Errorf("the configuration file cannot be read (%s)", err)
	}
	cfgText := string(text)

	candidates := peer.Candidates(peer.Alive(peers))
	pol := confedit.Policy{MaxPeers: opts.number, Ignore: opts.ignore, Extra: opts.extra}

	if opts.update {
		updateConfigFile(cfgText, candidates, pol)
	}

	if opts.restart {
		restartNode()
	}

	if opts.api {
		if err := applyViaAPI(cfgText, cfg.AdminSocket, candidates, pol); err != nil {
			return err
		}
	}
	return nil
}

// discoverPeers runs the collaborator pipeline: download and unpack the
// directory, collect the candidate records, probe them all and hand back
// the latency-ranked list.
func discoverPeers(ctx context.Context, cfg *config.UpdaterConfig) ([]peer.Peer, error) {
	fetcher := &directory.Fetcher{URL: cfg.DirectoryURL}
	root, cleanup, err := fetcher.Fetch(ctx)
	defer cleanup()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch the peer directory (%s)", err)
	}

	peers, err := peer.CollectPeers(root)
	if err != nil {
		return nil, fmt.Errorf("couldn't get peer addresses from downloaded files (%s)", err)
	}

	prober := latency.New(cfg.ProbeTimeout, cfg.ProbeConcurrency, cfg.ProbeRate)
	prober.ProbeAll(ctx, peers)
	return peers, nil
}

func printPeers(peers []peer.Peer) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("URI", "REGION", "COUNTRY", "LATENCY")
	for _, p := range peers {
		if !p.Alive {
			// ranked list, the dead tail starts here
			break
		}
		t.Row(p.URI, p.Region, p.Country, p.Latency.Round(time.Millisecond).String())
	}
	fmt.Println(t)
}

// updateConfigFile patches the Peers array in place. A locate failure is a
// diagnostic, not a fatal error: the file is left untouched and any other
// requested mode still runs.
func updateConfigFile(cfgText string, candidates []confedit.Candidate, pol confedit.Policy) {
	newText, err := confedit.UpdateDocument(cfgText, candidates, pol)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Incorrect configuration file format. The file was not written to.")
		log.WithError(err).Debug("config update skipped")
		return
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(opts.conf); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(opts.conf, []byte(newText), mode); err != nil {
		fmt.Fprintf(os.Stderr, "The changes could not be written to the configuration file (%s).\n", err)
	}
}

func applyViaAPI(cfgText, override string, candidates []confedit.Candidate, pol confedit.Policy) error {
	network, address, err := admin.SocketAddress(cfgText, override)
	if err != nil {
		return err
	}
	client, err := admin.Dial(network, address)
	if err != nil {
		return err
	}
	defer client.Close()
	return admin.ApplyPeers(client, candidates, pol)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

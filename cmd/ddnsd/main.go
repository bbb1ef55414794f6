package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Cloud-Foundations/Dominator/lib/decoders"
	"github.com/Cloud-Foundations/Dominator/lib/flags/loadflags"
	"github.com/Cloud-Foundations/ddns/pkg/constants"
	"github.com/Cloud-Foundations/ddns/pkg/ddns"
	"github.com/Cloud-Foundations/ddns/pkg/ddns/config"
	"github.com/Cloud-Foundations/ddns/pkg/log"
	"github.com/Cloud-Foundations/ddns/pkg/log/cmdlogger"
	"github.com/Cloud-Foundations/ddns/pkg/version"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gopkg.in/yaml.v2"
)

var (
	adminPortNum = flag.Uint("adminPortNum", constants.DdnsdPortNumber,
		"admin/metrics port number to listen on in daemon mode")
	configFile = flag.String("configFile", "/etc/ddnsd/config.yml",
		"Name of file containing zone configuration")
	daemon = flag.Bool("daemon", false,
		"If true, update zones on their configured intervals until interrupted")
	showVersion = flag.Bool("version", false,
		"If true, print the version and exit")
)

func init() {
	decoders.RegisterDecoder(".yaml", yamlDecoderGenerator)
	decoders.RegisterDecoder(".yml", yamlDecoderGenerator)
}

func doMain() int {
	if err := loadflags.LoadForDaemon("ddnsd"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	buildVersion := version.Get()
	flag.Usage = makeUsageFunc(buildVersion)
	flag.Parse()
	if *showVersion {
		fmt.Println(buildVersion)
		return 0
	}
	logger := cmdlogger.New(cmdlogger.GetStandardOptions())
	var cfgData config.Config
	if err := decoders.DecodeFile(*configFile, &cfgData); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	registry := prometheus.NewRegistry()
	updaters, err := config.New(cfgData, ddns.NewMetrics(registry), logger)
	if err != nil {
		logger.Println(err)
		return 1
	}
	cancelChannel := make(chan struct{})
	if *daemon {
		startAdminServer(registry, logger)
		go watchSignals(cancelChannel, logger)
	}
	if err := ddns.RunZones(updaters, *daemon, cancelChannel,
		logger); err != nil {
		logger.Println(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(doMain())
}

func makeUsageFunc(buildVersion version.Info) func() {
	return func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage: ddnsd (version %s) [flags...]\n",
			buildVersion)
		fmt.Fprintln(w, "Common flags:")
		flag.PrintDefaults()
	}
}

func startAdminServer(registry *prometheus.Registry,
	logger log.DebugLogger) {
	http.Handle("/metrics",
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", *adminPortNum), nil)
		logger.Printf("error serving admin requests: %s\n", err)
	}()
}

func watchSignals(cancelChannel chan<- struct{}, logger log.DebugLogger) {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)
	<-signalChannel
	logger.Println("caught signal: shutting down gracefully")
	close(cancelChannel)
}

func yamlDecoderGenerator(r io.Reader) decoders.Decoder {
	return yaml.NewDecoder(r)
}

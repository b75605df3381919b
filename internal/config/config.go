package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/expotools/expourl/internal/addr"
	"github.com/expotools/expourl/internal/eas"
	"github.com/expotools/expourl/internal/helper"
	"github.com/expotools/expourl/internal/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	defInterfaces = []string{"en0", "en1"}
	defLogLevel   = log.Info
)

func Load(args []string) *Config {
	progName := getProgramName(args)

	flags := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Printf("Usage:\n")
		fmt.Printf("  %v [options] [platforms]\n\n", progName)
		fmt.Printf("Options:\n")
		flags.PrintDefaults()
	}
	if err := parseFlags(flags, args); err != nil {
		printErrorAndExit(flags, err)
	}

	rawConfig, err := parseRawConfig(flags)
	if err != nil {
		printErrorAndExit(flags, err)
	}

	config := rawConfig.ToConfig()
	config.Platforms = flags.Args()
	return config
}

func printErrorAndExit(f *pflag.FlagSet, err error) {
	fmt.Printf("Error: %v\n\n", err)
	f.Usage()
	os.Exit(1)
}

func parseRawConfig(f *pflag.FlagSet) (*rawConfig, error) {
	v := viper.New()

	// Bind command-line flags to their corresponding values from config file
	configNames := []string{"port", "interfaces", "profile", "timeout", "log.level"}
	for _, name := range configNames {
		kebabCasedName := strings.ReplaceAll(name, ".", "-")
		if err := v.BindPFlag(name, f.Lookup(kebabCasedName)); err != nil {
			panic(fmt.Errorf("bind flag: %w", err))
		}
	}

	v.SetConfigFile(f.Lookup("config-file").Value.String())
	if err := v.ReadInConfig(); err != nil {
		// Make the configuration file optional
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
	}

	options := []viper.DecoderConfigOption{
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)),

		func(c *mapstructure.DecoderConfig) {
			c.IgnoreUntaggedFields = true
		},
	}

	var config rawConfig
	if err := v.UnmarshalExact(&config, options...); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	return &config, nil
}

func parseFlags(f *pflag.FlagSet, args []string) error {
	// Flags shared with options from a configuration file
	port := portValue(helper.DefaultPort)
	f.Var(&port, "port", "``port number of the development server")
	f.StringSlice("interfaces", defInterfaces, "``interface names to query for an address, in order of preference")
	f.String("profile", eas.DefaultProfile, "``EAS build profile")
	f.Duration("timeout", 0, "``wait duration for address queries")

	logLevel := logLevelValue(defLogLevel)
	f.Var(&logLevel, "log-level", "``severity level of logging messages")

	help := f.Bool("help", false, "``display help message")
	f.String("config-file", "", "``configuration file")

	if err := f.Parse(args[1:]); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *help {
		f.Usage()
		os.Exit(2)
	}
	return nil
}

func getProgramName(args []string) string {
	progPath := args[0]
	return strings.TrimSuffix(
		filepath.Base(progPath),
		filepath.Ext(progPath),
	)
}

type Config struct {
	Port       uint16
	Interfaces []string

	Profile   string
	Platforms []string

	Log struct {
		Level log.Level
	}

	Timeout time.Duration
}

type rawConfig struct {
	Port       portValue `mapstructure:"port"`
	Interfaces []string  `mapstructure:"interfaces"`

	Profile string `mapstructure:"profile"`

	Log struct {
		Level logLevelValue `mapstructure:"level"`
	} `mapstructure:"log"`

	Timeout time.Duration `mapstructure:"timeout"`
}

func (c *rawConfig) ToConfig() *Config {
	var config Config

	config.Port = uint16(c.Port)
	config.Interfaces = c.Interfaces
	config.Profile = c.Profile
	config.Log.Level = log.Level(c.Log.Level)
	config.Timeout = c.Timeout

	return &config
}

type portValue uint16

func (v *portValue) Set(s string) error {
	port, err := addr.ParsePort(s)
	if err != nil {
		return err
	}
	*v = portValue(port)
	return nil
}

func (v *portValue) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

func (v *portValue) String() string {
	return strconv.Itoa(int(*v))
}

func (v *portValue) Type() string {
	return ""
}

type logLevelValue log.Level

func (v *logLevelValue) Set(s string) error {
	return (*log.Level)(v).UnmarshalText([]byte(s))
}

func (v *logLevelValue) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

func (v *logLevelValue) String() string {
	return (*log.Level)(v).String()
}

func (v *logLevelValue) Type() string {
	return ""
}

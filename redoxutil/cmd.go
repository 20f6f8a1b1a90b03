/*
Copyright © 2026 the redoxthermo authors.
This file is part of redoxthermo.

redoxthermo is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

redoxthermo is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with redoxthermo.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package redoxutil holds the command-line interface of redoxthermo.
package redoxutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/redoxthermo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	modelFlags := []*pflag.FlagSet{solveCmd.Flags(), isothermCmd.Flags(), isobarCmd.Flags()}
	databaseFlags := []*pflag.FlagSet{endmembersCmd.Flags(), solveCmd.Flags(), isothermCmd.Flags(), isobarCmd.Flags()}

	// Options are the configuration options available to redoxthermo.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel is the minimum level of log messages that are
              printed: debug, info, warning or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Composition",
			usage: `
              Composition is the formula of the material, e.g. "SrFeO3" for
              fitted models or "Sr1Fe0.5Mn0.5Ox" for theoretical models.`,
			shorthand:  "c",
			defaultVal: "",
			flagsets:   append(modelFlags, endmembersCmd.Flags()),
		},
		{
			name: "Model.Type",
			usage: `
              Model.Type selects the enthalpy and entropy model: "fit" reads
              the fit of Composition from Model.Dataset, "two-endmember" uses
              the theoretical solid solution model with the Model.DHMin,
              Model.DHMax and Model.Active parameters, and "endmember" derives
              these parameters from the materials database.`,
			defaultVal: "fit",
			flagsets:   modelFlags,
		},
		{
			name: "Model.Dataset",
			usage: `
              Model.Dataset is the path to the TOML file with material fits.
              It can include environment variables.`,
			defaultVal: "",
			flagsets:   modelFlags,
		},
		{
			name: "Model.DHMin",
			usage: `
              Model.DHMin is the redox enthalpy [J/mol] of the more
              reducible endmember.`,
			defaultVal: 0.0,
			flagsets:   modelFlags,
		},
		{
			name: "Model.DHMax",
			usage: `
              Model.DHMax is the redox enthalpy [J/mol] of the less
              reducible endmember.`,
			defaultVal: 0.0,
			flagsets:   modelFlags,
		},
		{
			name: "Model.Active",
			usage: `
              Model.Active is the fraction of the more reducible species.`,
			defaultVal: 1.0,
			flagsets:   modelFlags,
		},
		{
			name: "Model.DebyePerovskite",
			usage: `
              Model.DebyePerovskite is the Debye temperature [K] of the
              oxidized phase.`,
			defaultVal: 0.0,
			flagsets:   modelFlags,
		},
		{
			name: "Model.DebyeBrownmillerite",
			usage: `
              Model.DebyeBrownmillerite is the Debye temperature [K] of the
              reduced phase.`,
			defaultVal: 0.0,
			flagsets:   modelFlags,
		},
		{
			name: "Bracket",
			usage: `
              Bracket is the interval of non-stoichiometries that is searched
              if the default interval does not contain a solution.`,
			defaultVal: []float64{redoxthermo.DefaultBracket.A, redoxthermo.DefaultBracket.B},
			flagsets:   modelFlags,
		},
		{
			name: "Temperature",
			usage: `
              Temperature [K] at which the equilibrium is calculated.`,
			shorthand:  "t",
			defaultVal: 1000.0,
			flagsets:   []*pflag.FlagSet{solveCmd.Flags(), isothermCmd.Flags()},
		},
		{
			name: "Iso",
			usage: `
              Iso is the natural logarithm of the oxygen partial pressure
              [bar] at which the equilibrium is calculated.`,
			defaultVal: -5.0,
			flagsets:   []*pflag.FlagSet{solveCmd.Flags(), isobarCmd.Flags()},
		},
		{
			name: "Sweep.Min",
			usage: `
              Sweep.Min is the lowest value of the swept variable: ln p(O2)
              for isotherms and temperature [K] for isobars.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{isothermCmd.Flags(), isobarCmd.Flags()},
		},
		{
			name: "Sweep.Max",
			usage: `
              Sweep.Max is the highest value of the swept variable.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{isothermCmd.Flags(), isobarCmd.Flags()},
		},
		{
			name: "Sweep.N",
			usage: `
              Sweep.N is the number of points in the sweep.`,
			defaultVal: 50,
			flagsets:   []*pflag.FlagSet{isothermCmd.Flags(), isobarCmd.Flags()},
		},
		{
			name: "Database.File",
			usage: `
              Database.File is the path to a TOML file of computed materials
              entries. If it is empty, Database.URL is used.`,
			defaultVal: "",
			flagsets:   databaseFlags,
		},
		{
			name: "Database.URL",
			usage: `
              Database.URL is the base URL of the materials database API.`,
			defaultVal: "",
			flagsets:   databaseFlags,
		},
		{
			name: "Database.APIKey",
			usage: `
              Database.APIKey is the key for the materials database API.`,
			defaultVal: "",
			flagsets:   databaseFlags,
		},
		{
			name: "Database.CacheDir",
			usage: `
              Database.CacheDir is the directory where database requests
              are cached. If it is empty, requests are only cached in memory.`,
			defaultVal: "",
			flagsets:   databaseFlags,
		},
		{
			name: "Database.CacheSize",
			usage: `
              Database.CacheSize is the number of database requests that are
              cached in memory.`,
			defaultVal: 1000,
			flagsets:   databaseFlags,
		},
		{
			name: "Energy.Records",
			usage: `
              Energy.Records is the path to the TOML file with the energy
              records of the candidate materials.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{energyCmd.Flags()},
		},
		{
			name: "Energy.Process",
			usage: `
              Energy.Process is the thermochemical process: "Air Separation",
              "Water Splitting" or "CO2 Splitting".`,
			defaultVal: "Air Separation",
			flagsets:   []*pflag.FlagSet{energyCmd.Flags()},
		},
		{
			name: "Energy.PumpEnergy",
			usage: `
              Energy.PumpEnergy is the pumping energy [kJ/kg redox material].
              If it is -1, the mechanical envelope is used.`,
			defaultVal: -1.0,
			flagsets:   []*pflag.FlagSet{energyCmd.Flags()},
		},
		{
			name: "Energy.WaterFeedTemp",
			usage: `
              Energy.WaterFeedTemp is the temperature of the water fed to the
              steam generator.`,
			defaultVal: 25.0,
			flagsets:   []*pflag.FlagSet{energyCmd.Flags()},
		},
		{
			name: "Energy.HeatRecovery",
			usage: `
              Energy.HeatRecovery is the fraction of heat recovered from the
              redox material.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{energyCmd.Flags()},
		},
		{
			name: "Energy.SteamHeatRecovery",
			usage: `
              Energy.SteamHeatRecovery is the fraction of heat recovered from
              the steam.`,
			defaultVal: 0.8,
			flagsets:   []*pflag.FlagSet{energyCmd.Flags()},
		},
		{
			name: "Energy.HeatingValue",
			usage: `
              Energy.HeatingValue is the heating value of hydrogen used for
              efficiencies: "high" or "low".`,
			defaultVal: "high",
			flagsets:   []*pflag.FlagSet{energyCmd.Flags()},
		},
		{
			name: "Energy.ProductRatio",
			usage: `
              Energy.ProductRatio is the H2/H2O or CO/CO2 ratio of the
              product stream.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{energyCmd.Flags()},
		},
		{
			name: "Energy.ExcludeUnstable",
			usage: `
              Energy.ExcludeUnstable ranks materials that are unstable as
              perovskites last.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{energyCmd.Flags()},
		},
		{
			name: "Energy.Celsius",
			usage: `
              Energy.Celsius specifies that Energy.WaterFeedTemp is in °C.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{energyCmd.Flags()},
		},
		{
			name: "Energy.ExperimentalData",
			usage: `
              Energy.ExperimentalData specifies that the records hold
              experimental rather than theoretical data.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{energyCmd.Flags()},
		},
		{
			name: "Energy.Metrics",
			usage: `
              Energy.Metrics are additional ranking tables, given as names and
              expressions of the record variables. Lower values rank first.`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{energyCmd.Flags()},
		},
		{
			name: "Energy.OutputFile",
			usage: `
              Energy.OutputFile is the path of the xlsx file that the ranked
              tables are written to. It can include environment variables.`,
			defaultVal: "energy.xlsx",
			flagsets:   []*pflag.FlagSet{energyCmd.Flags()},
		},
		{
			name: "Energy.Store",
			usage: `
              Energy.Store is the URL of a blob storage bucket, e.g.
              "file:///tmp/results" or "s3://bucket", where the results are
              saved. If it is empty, results are not saved.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{energyCmd.Flags()},
		},
	}

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			case []float64:
				if option.shorthand == "" {
					set.Float64Slice(option.name, option.defaultVal.([]float64), option.usage)
				} else {
					set.Float64SliceP(option.name, option.shorthand, option.defaultVal.([]float64), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				if err := e.Encode(option.defaultVal); err != nil {
					panic(fmt.Errorf("redoxthermo: encoding default for %s: %v", option.name, err))
				}
				s := string(b.Bytes())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
		}
	}
	InitializeConfig()
}

// InitializeConfig replaces Cfg with a new configuration that is bound to
// the command-line flags and REDOXTHERMO_* environment variables, and
// returns it.
func InitializeConfig() *viper.Viper {
	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("REDOXTHERMO")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		if err := Cfg.BindPFlag(option.name, option.flagsets[0].Lookup(option.name)); err != nil {
			panic(fmt.Errorf("redoxthermo: binding flag %s: %v", option.name, err))
		}
	}
	return Cfg
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(solveCmd)
	Root.AddCommand(isothermCmd)
	Root.AddCommand(isobarCmd)
	Root.AddCommand(endmembersCmd)
	Root.AddCommand(energyCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the log level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("redoxthermo: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("redoxthermo: %v", err)
	}
	logrus.SetLevel(level)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "redoxthermo",
	Short: "Thermodynamics of perovskite redox materials.",
	Long: `redoxthermo calculates the equilibrium non-stoichiometry of perovskite
oxides and the energy demand of solar thermochemical air separation, water
splitting and CO2 splitting with them.
Use the subcommands specified below to access the functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'REDOXTHERMO_var' where 'var' is the
name of the variable to be set, with '.' replaced by '_'.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of redoxthermo.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("redoxthermo v%s\n", redoxthermo.Version)
	},
	DisableAutoGenTag: true,
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Calculate the equilibrium non-stoichiometry.",
	Long: `solve calculates the equilibrium non-stoichiometry, redox enthalpy and
entropy of a material at the configured temperature and oxygen partial pressure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := ModelFromConfig(cmd.Context(), Cfg)
		if err != nil {
			return err
		}
		bracket, err := bracketFromConfig(Cfg)
		if err != nil {
			return err
		}
		return Solve(cmd.OutOrStdout(), m, Cfg.GetFloat64("Iso"), Cfg.GetFloat64("Temperature"), bracket)
	},
	DisableAutoGenTag: true,
}

var isothermCmd = &cobra.Command{
	Use:   "isotherm",
	Short: "Calculate an isotherm.",
	Long: `isotherm calculates the equilibrium non-stoichiometry at the configured
temperature for oxygen partial pressures between exp(Sweep.Min) and exp(Sweep.Max) bar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := ModelFromConfig(cmd.Context(), Cfg)
		if err != nil {
			return err
		}
		bracket, err := bracketFromConfig(Cfg)
		if err != nil {
			return err
		}
		isos, err := sweepFromConfig(Cfg)
		if err != nil {
			return err
		}
		s := redoxthermo.IsothermCurve(Cfg.GetFloat64("Temperature"), isos, m, bracket[0], bracket[1])
		return writeSolutions(cmd.OutOrStdout(), s)
	},
	DisableAutoGenTag: true,
}

var isobarCmd = &cobra.Command{
	Use:   "isobar",
	Short: "Calculate an isobar.",
	Long: `isobar calculates the equilibrium non-stoichiometry at the configured
oxygen partial pressure for temperatures between Sweep.Min and Sweep.Max.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := ModelFromConfig(cmd.Context(), Cfg)
		if err != nil {
			return err
		}
		bracket, err := bracketFromConfig(Cfg)
		if err != nil {
			return err
		}
		temps, err := sweepFromConfig(Cfg)
		if err != nil {
			return err
		}
		s := redoxthermo.IsobarCurve(Cfg.GetFloat64("Iso"), temps, m, bracket[0], bracket[1])
		return writeSolutions(cmd.OutOrStdout(), s)
	},
	DisableAutoGenTag: true,
}

var endmembersCmd = &cobra.Command{
	Use:   "endmembers",
	Short: "Analyze the endmembers of a solid solution.",
	Long: `endmembers prints the endmembers of Composition, its most reducible
species, and its theoretical redox enthalpy and endmember enthalpy bounds
calculated from the materials database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := DatabaseFromConfig(Cfg)
		if err != nil {
			return err
		}
		return Endmembers(cmd.Context(), cmd.OutOrStdout(), db, Cfg.GetString("Composition"))
	},
	DisableAutoGenTag: true,
}

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Rank materials by energy demand.",
	Long: `energy calculates the energy demand of the records in Energy.Records
for the configured process, ranks the materials, and writes the ranked tables
to Energy.OutputFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := EnergyOptionsFromConfig(Cfg)
		if err != nil {
			return err
		}
		return Energy(cmd.Context(), cmd.OutOrStdout(), Cfg.GetString("Energy.Records"),
			Cfg.GetString("Energy.OutputFile"), Cfg.GetString("Energy.Store"), o)
	},
	DisableAutoGenTag: true,
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/ieee0824/makecsv-go"
)

// fileConfig mirrors the command-line options. Keys use the flag names.
type fileConfig struct {
	Feat               string `yaml:"feat"`
	Utt2NumFrames      string `yaml:"utt2num_frames"`
	Dict               string `yaml:"dict"`
	Text               string `yaml:"text"`
	Unit               string `yaml:"unit"`
	RemoveWordBoundary *bool  `yaml:"remove_word_boundary"`
	IsTest             *bool  `yaml:"is_test"`
	Unk                string `yaml:"unk"`
	Space              string `yaml:"space"`
	NLSyms             string `yaml:"nlsyms"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// apply overlays the non-empty values of fc on cfg.
func (fc fileConfig) apply(cfg *makecsv.Config) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setString(&cfg.FeatPath, fc.Feat)
	setString(&cfg.FramesPath, fc.Utt2NumFrames)
	setString(&cfg.DictPath, fc.Dict)
	setString(&cfg.TextPath, fc.Text)
	setString(&cfg.NLSymsPath, fc.NLSyms)
	setString(&cfg.Unk, fc.Unk)
	setString(&cfg.Space, fc.Space)
	if fc.Unit != "" {
		cfg.Unit = makecsv.Unit(fc.Unit)
	}
	if fc.RemoveWordBoundary != nil {
		cfg.RemoveWordBoundary = *fc.RemoveWordBoundary
	}
	if fc.IsTest != nil {
		cfg.IsTest = *fc.IsTest
	}
}

// options holds the parsed command line.
type options struct {
	configPath         string
	feat               string
	frames             string
	dict               string
	text               string
	unit               string
	removeWordBoundary boolValue
	isTest             boolValue
	unk                string
	space              string
	nlsyms             string
	quiet              bool
	verbose            bool
}

func (o *options) register(fs *pflag.FlagSet) {
	def := makecsv.DefaultConfig()
	fs.StringVar(&o.configPath, "config", "", "YAML file with default values for the options below")
	fs.StringVar(&o.feat, "feat", "", "feats.scp file")
	fs.StringVar(&o.frames, "utt2num_frames", "", "utt2num_frames file")
	fs.StringVar(&o.dict, "dict", "", "dictionary file")
	fs.StringVar(&o.text, "text", "", "text file")
	fs.StringVar(&o.unit, "unit", "", "token units {word,bpe,char,phone}")
	fs.Var(&o.removeWordBoundary, "remove_word_boundary", "insert the space token between words (char unit)")
	fs.Var(&o.isTest, "is_test", "test set: emit no token ids")
	fs.StringVar(&o.unk, "unk", def.Unk, "<unk> token")
	fs.StringVar(&o.space, "space", def.Space, "<space> token")
	fs.StringVar(&o.nlsyms, "nlsyms", "", "path to non-linguistic symbols, e.g., <NOISE> etc.")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "do not print progress")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
}

// config resolves defaults, then the config file, then flags set explicitly.
func (o *options) config(fs *pflag.FlagSet) (makecsv.Config, error) {
	cfg := makecsv.DefaultConfig()
	if o.configPath != "" {
		fc, err := loadFileConfig(o.configPath)
		if err != nil {
			return cfg, err
		}
		fc.apply(&cfg)
	}

	if fs.Changed("feat") {
		cfg.FeatPath = o.feat
	}
	if fs.Changed("utt2num_frames") {
		cfg.FramesPath = o.frames
	}
	if fs.Changed("dict") {
		cfg.DictPath = o.dict
	}
	if fs.Changed("text") {
		cfg.TextPath = o.text
	}
	if fs.Changed("unit") {
		cfg.Unit = makecsv.Unit(o.unit)
	}
	if fs.Changed("remove_word_boundary") {
		cfg.RemoveWordBoundary = bool(o.removeWordBoundary)
	}
	if fs.Changed("is_test") {
		cfg.IsTest = bool(o.isTest)
	}
	if fs.Changed("unk") {
		cfg.Unk = o.unk
	}
	if fs.Changed("space") {
		cfg.Space = o.space
	}
	if fs.Changed("nlsyms") {
		cfg.NLSymsPath = o.nlsyms
	}
	return cfg, nil
}

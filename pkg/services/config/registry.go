package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile describes one supported country context: the version of its policy
// package and where its geographic data lives.
type Profile struct {
	Name        string
	Version     string
	WeightsYear int
	DataBucket  string
	GeoDataKey  string
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]Profile, error)
	GetProfile(ctx context.Context, country string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// NewRegistry loads country profiles from an ini file with one section per
// country id.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profile, err := cr.GetProfile(ctx, section.Name())
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, country string) (*Profile, error) {
	if !cr.cfg.HasSection(country) {
		return nil, fmt.Errorf("country profile %s not found", country)
	}
	section := cr.cfg.Section(country)

	year, err := section.Key("weights_year").Int()
	if err != nil {
		year = 0
	}

	return &Profile{
		Name:        country,
		Version:     section.Key("version").String(),
		WeightsYear: year,
		DataBucket:  section.Key("data_bucket").String(),
		GeoDataKey:  section.Key("geo_data_key").String(),
	}, nil
}

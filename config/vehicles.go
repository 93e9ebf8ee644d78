package config

import "fmt"

// TruckConfig describes the demo truck. Cargo is the weight loaded during
// the demo run.
type TruckConfig struct {
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	MaxLoad int    `json:"max_load"`
	Cargo   int    `json:"cargo"`
}

func (c TruckConfig) Validate() error {
	if err := validateIdentity(c.Brand, c.Model); err != nil {
		return err
	}
	if c.MaxLoad < 0 {
		return fmt.Errorf("max_load must not be negative")
	}
	if c.Cargo < 0 {
		return fmt.Errorf("cargo must not be negative")
	}
	return nil
}

type CarConfig struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Doors int    `json:"doors"`
}

func (c CarConfig) Validate() error {
	if err := validateIdentity(c.Brand, c.Model); err != nil {
		return err
	}
	if c.Doors <= 0 {
		return fmt.Errorf("doors must be positive")
	}
	return nil
}

type BusConfig struct {
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Capacity int    `json:"capacity"`
}

func (c BusConfig) Validate() error {
	if err := validateIdentity(c.Brand, c.Model); err != nil {
		return err
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive")
	}
	return nil
}

func validateIdentity(brand, model string) error {
	if brand == "" {
		return fmt.Errorf("brand is required")
	}
	if model == "" {
		return fmt.Errorf("model is required")
	}
	return nil
}

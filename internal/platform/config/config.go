package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config agrupa toda la configuración del servicio, cargada desde env.
type Config struct {
	// Port es el puerto HTTP (sin los dos puntos).
	Port string `env:"PORT" envDefault:"8080"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// VetEmail es la dirección de la veterinaria con la que chatean los
	// dueños. El default viene del sistema original; ojo: no coincide con
	// la cuenta demo vet@example.com (ver DESIGN.md).
	VetEmail string `env:"VET_EMAIL" envDefault:"vet@clinic.com"`

	// SeedDemo crea las dos cuentas demo si la colección de usuarios está vacía.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"true"`

	Storage Storage `envPrefix:"STORAGE_"`
}

// Storage elige el backend del almacén clave-valor.
type Storage struct {
	// Driver: memory | sqlite | postgres
	Driver string `env:"DRIVER" envDefault:"memory"`

	SQLitePath  string `env:"SQLITE_PATH" envDefault:"pet-haven.db"`
	PostgresDSN string `env:"POSTGRES_DSN"`
}

// Load parsea la configuración desde variables de entorno.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}

package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

// lowerPosflag is a koanf provider that reads a pflag.FlagSet and lower cases the flag names.
type lowerPosflag struct {
	delim   string
	flagset *pflag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a provider that unflattens the flag names along delim ("logger.level" becomes
// {logger: {level: ...}}). Flags that were not set on the command line only contribute their default value if ko
// does not contain the key yet.
func lowerPosflagProvider(f *pflag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagset: f,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	flat := make(map[string]interface{})
	p.flagset.VisitAll(func(f *pflag.Flag) {
		key := strings.ToLower(f.Name)
		if !f.Changed && p.ko.Exists(key) {
			return
		}

		var value interface{}
		switch f.Value.Type() {
		case "int":
			i, _ := p.flagset.GetInt(f.Name)
			value = int64(i)
		case "int64":
			value, _ = p.flagset.GetInt64(f.Name)
		case "float64":
			value, _ = p.flagset.GetFloat64(f.Name)
		case "bool":
			value, _ = p.flagset.GetBool(f.Name)
		case "stringSlice":
			value, _ = p.flagset.GetStringSlice(f.Name)
		default:
			value = f.Value.String()
		}

		flat[key] = value
	})

	return maps.Unflatten(flat, p.delim), nil
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, ierrors.New("pflag provider does not support this method")
}

// Watch is not supported by the pflag provider.
func (p *lowerPosflag) Watch(_ func(event interface{}, err error)) error {
	return ierrors.New("pflag provider does not support this method")
}

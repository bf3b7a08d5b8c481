package catalogue

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/curiata/coreiq/internal/model"
)

type fileSchema struct {
	Functions map[string]map[string][]SubCriterion `yaml:"functions"`
}

// LoadFile returns the built-in bank with entries overridden from a YAML
// file. Only the function/component cells named in the file are replaced;
// everything else stays built in.
func LoadFile(path string) (*Catalogue, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "catalogue: read %s", path)
	}
	var fs fileSchema
	if err := yaml.Unmarshal(raw, &fs); err != nil {
		return nil, eris.Wrapf(err, "catalogue: parse %s", path)
	}

	merged := make(map[model.FunctionName]map[model.ComponentName][]SubCriterion, len(builtin))
	for fn, comps := range builtin {
		merged[fn] = make(map[model.ComponentName][]SubCriterion, len(comps))
		for cn, subs := range comps {
			merged[fn][cn] = subs
		}
	}

	for fnName, comps := range fs.Functions {
		fn := model.FunctionName(fnName)
		if !fn.Valid() {
			return nil, eris.Errorf("catalogue: unknown function %q in %s", fnName, path)
		}
		for compName, subs := range comps {
			cn := model.ComponentName(compName)
			if !cn.Valid() {
				return nil, eris.Errorf("catalogue: unknown component %q in %s", compName, path)
			}
			for _, s := range subs {
				if s.Key == "" {
					return nil, eris.Errorf("catalogue: %s/%s has a sub-criterion without a key", fnName, compName)
				}
			}
			merged[fn][cn] = subs
		}
	}

	return &Catalogue{subs: merged}, nil
}

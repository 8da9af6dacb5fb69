package xmlio

import (
	"encoding/xml"
	"fmt"

	"github.com/haiot4105/multi-agent-nav-lib/params"
)

// WriteConfig writes an experiment configuration: the experiment
// parameter block followed by one algorithm block per parameter set.
func WriteConfig(path string, exp params.ExperimentParams, algs ...params.AlgParams) error {
	file := xmlConfigFile{
		Experiment: xmlExperiment{Params: paramElements(exp.Attrs())},
		Algorithms: make([]xmlAlgorithm, len(algs)),
	}
	for k, alg := range algs {
		file.Algorithms[k] = xmlAlgorithm{
			Name:   alg.AlgName(),
			Params: paramElements(alg.Attrs()),
		}
	}

	return writeXML(path, file)
}

// ReadConfig reads an experiment configuration, constructing each
// algorithm parameter set from its name via the params registry.
func ReadConfig(path string) (params.ExperimentParams, []params.AlgParams, error) {
	var file xmlConfigFile
	var exp params.ExperimentParams
	if err := readXML(path, &file); err != nil {
		return exp, nil, err
	}

	for _, el := range file.Experiment.Params {
		if err := exp.SetAttr(el.XMLName.Local, el.Value); err != nil {
			return exp, nil, fmt.Errorf("xmlio: experiment block: %w", err)
		}
	}

	algs := make([]params.AlgParams, len(file.Algorithms))
	for k, block := range file.Algorithms {
		alg, err := params.NewAlg(block.Name)
		if err != nil {
			return exp, nil, fmt.Errorf("xmlio: algorithm block %d: %w", k, err)
		}
		for _, el := range block.Params {
			if err := alg.SetAttr(el.XMLName.Local, el.Value); err != nil {
				return exp, nil, fmt.Errorf("xmlio: algorithm %q: %w", block.Name, err)
			}
		}
		algs[k] = alg
	}

	return exp, algs, nil
}

func paramElements(attrs []params.Attr) []xmlParamValue {
	out := make([]xmlParamValue, len(attrs))
	for k, a := range attrs {
		out[k] = xmlParamValue{XMLName: xml.Name{Local: a.Key}, Value: a.Value}
	}

	return out
}

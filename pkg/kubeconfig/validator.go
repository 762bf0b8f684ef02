package kubeconfig

import (
	"fmt"
	"os"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"sigs.k8s.io/yaml"
)

var requiredSections = []string{"clusters", "contexts", "users"}

// ValidateStructure checks that the file at path parses as a mapping whose
// clusters, contexts, and users sections are all non-empty sequences. The
// check is deliberately syntactic; it never inspects whether the entries
// themselves are coherent.
func ValidateStructure(path string) humane.Error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return humane.Wrap(err, "failed to read credential file")
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return humane.Wrap(ErrStructureInvalid, fmt.Sprintf("%s does not parse as a YAML mapping: %v", path, err))
	}

	for _, section := range requiredSections {
		value, ok := doc[section]
		if !ok {
			return humane.Wrap(ErrStructureInvalid, fmt.Sprintf("%s is missing the %q section", path, section))
		}
		seq, ok := value.([]any)
		if !ok || len(seq) == 0 {
			return humane.Wrap(ErrStructureInvalid, fmt.Sprintf("section %q in %s must be a non-empty list", section, path))
		}
	}

	return nil
}

package vcs

// Probe locates the repository containing startDir and extracts its
// Data in one call — the entry point the rest of zerv uses instead of
// talking to a Prober directly.
func Probe(prober Prober, startDir string) (*Data, string, error) {
	root, err := prober.FindRoot(startDir)
	if err != nil {
		return nil, "", err
	}
	data, err := prober.Extract(root)
	if err != nil {
		return nil, "", err
	}
	return data, root, nil
}

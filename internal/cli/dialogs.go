package cli

// staticDialogs answers every prompt from flag values, for non-interactive
// use. An unset value reads as cancellation, matching a dismissed dialog.
type staticDialogs struct {
	pick    string
	save    string
	confirm bool
}

func (d staticDialogs) PickFile(title string) (string, bool, error) {
	return d.pick, d.pick == "", nil
}

func (d staticDialogs) PickDirectory(title string) (string, bool, error) {
	return d.pick, d.pick == "", nil
}

func (d staticDialogs) SaveFile(title, defaultName string) (string, bool, error) {
	if d.save == "" {
		return "", true, nil
	}
	return d.save, false, nil
}

func (d staticDialogs) Confirm(message, detail string) (bool, error) {
	return d.confirm, nil
}

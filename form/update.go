package form

// Update is the transition function: it applies one event to the state and
// returns the effects to run, if any. It is pure; callers own the scheduling.
func Update(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case TitleEdited:
		s.Title = ev.Value
	case PassphraseEdited:
		s.Passphrase = ev.Value
	case SecretEdited:
		s.SecretText = ev.Value
	case NotesLabelEdited:
		s.NotesLabel = ev.Value
	case PageSizeChanged:
		s.PageSize = ev.Size
	case SourceToggled:
		// only the active source changes; both buffers are kept
		if ev.File {
			s.Source = SourceFile
		} else {
			s.Source = SourceInline
		}
	case AdvancedToggled:
		s.ShowAdvanced = !s.ShowAdvanced

	case GeneratePressed:
		if s.Generating {
			return s, nil
		}
		s.Generating = true
		s.SavedTo = ""
		return s, []Effect{GenerateEffect{Req: s.snapshot()}}
	case GenerateDone:
		s.Generating = false
	case WarningsCleared:
		s.SecretWarning = ""
		s.PassphraseWarning = ""
		s.GenerateWarning = ""
	case SecretRejected:
		s.SecretWarning = ev.Reason
	case PassphraseRejected:
		s.PassphraseWarning = ev.Reason
	case GenerateFailed:
		s.GenerateWarning = ev.Reason

	case PickPressed:
		if s.Picking {
			return s, nil
		}
		s.Picking = true
		return s, []Effect{PickFileEffect{}}
	case FilePicked:
		s.Picking = false
		if ev.Handle != nil {
			s.SecretFileName = ev.Handle.Name()
			return s, []Effect{ReadFileEffect{Handle: ev.Handle}}
		}
	case FileLoaded:
		s.SecretFileData = ev.Data

	case ArtifactReady:
		return s, []Effect{SaveEffect{Data: ev.Data}}
	case SaveDone:
		if ev.Err != "" {
			s.GenerateWarning = "Save failed: " + ev.Err
		} else if ev.Path != "" {
			s.SavedTo = ev.Path
		}
	}
	return s, nil
}

package media

import "path"

// ResolveAudio picks the first audio file in audioDir by name order and
// returns its path relative to the static dir. ok is false when there is none.
func ResolveAudio(audioDir string) (rel string, ok bool, err error) {
	files, err := ListMedia(audioDir, AudioExtensions)
	if err != nil {
		return "", false, err
	}
	if len(files) == 0 {
		return "", false, nil
	}
	return path.Join("audio", files[0].Name), true, nil
}

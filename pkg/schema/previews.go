package schema

const previewQuery = "?auto=format&fit=crop&q=80&w=300&h=200"

// Preview returns the thumbnail shown next to a visual style.
// Every variant must have a case; TestPreviewsAreExhaustive guards this.
func (v VisualStyle) Preview() string {
	switch v {
	case VisualCinematic:
		return unsplash("photo-1536440136628-849c177e76a1")
	case VisualMakotoShinkai:
		return unsplash("photo-1541512416146-3cf58d6b27cc")
	case VisualAnimeGhibli:
		return unsplash("photo-1578301978018-3005759f48f7")
	case VisualDarkFantasyAnime:
		return unsplash("photo-1502700807168-484a3e7889d0")
	case VisualRealistic:
		return unsplash("photo-1507003211169-0a1dd7228f2d")
	case VisualCyberpunk:
		return unsplash("photo-1605810230434-7631ac76ec81")
	case Visual3DRender:
		return unsplash("photo-1620641788421-7a1c342ea42e")
	case VisualSketch:
		return unsplash("photo-1515155075601-23009d0cb6d4")
	case VisualOilPainting:
		return unsplash("photo-1578301978693-85fa9c0320b9")
	}
	return ""
}

func (m MusicStyle) Preview() string {
	switch m {
	case MusicOrchestral:
		return unsplash("photo-1465847899034-d174df934bc0")
	case MusicElectronic:
		return unsplash("photo-1514525253361-bee8718a300a")
	case MusicAmbient:
		return unsplash("photo-1441974231531-c6227db76b6e")
	case MusicLofi:
		return unsplash("photo-1516280440614-37939bbacd81")
	case MusicDarkFantasy:
		return unsplash("photo-1519074063912-21199324706c")
	case MusicCinematic:
		return unsplash("photo-1485846234645-a62644f84728")
	}
	return ""
}

func unsplash(id string) string {
	return "https://images.unsplash.com/" + id + previewQuery
}

package guard

// Screen paths.
const (
	HomePath              = "/"
	VerifyCertificatePath = "/verify-certificate"
	LoginPath             = "/login"
	RegisterPath          = "/register"
	PasswordRecoveryPath  = "/password-recovery"
	EventsPath            = "/events"
	ProfilePath           = "/me"
	MyEventsPath          = "/me/events"
)

var routes = map[string]Region{
	HomePath:              Open,
	VerifyCertificatePath: Open,
	LoginPath:             PublicOnly,
	RegisterPath:          PublicOnly,
	PasswordRecoveryPath:  PublicOnly,
	EventsPath:            Private,
	ProfilePath:           Private,
	MyEventsPath:          Private,
}

// Resolve maps path to a known route. Unknown paths resolve to [HomePath].
func Resolve(path string) (string, Region) {
	if region, ok := routes[path]; ok {
		return path, region
	}
	return HomePath, Open
}

// RegionOf returns the region of a resolved path.
func RegionOf(path string) Region {
	_, region := Resolve(path)
	return region
}

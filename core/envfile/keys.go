package envfile

// FileName is the name of the configuration file inside the working directory.
const FileName = ".env.local"

// Keys written by the setup command.
const (
	KeyMongoURI           = "MONGODB_URI"
	KeyNextAuthURL        = "NEXTAUTH_URL"
	KeyNextAuthSecret     = "NEXTAUTH_SECRET"
	KeyGoogleClientID     = "GOOGLE_CLIENT_ID"
	KeyGoogleClientSecret = "GOOGLE_CLIENT_SECRET"
)

package landing

// bannerArt is the landing page wordmark.
const bannerArt = ` __  __ _           _ ____       _   _
|  \/  (_)_ __   __| |  _ \ __ _| |_| |__
| |\/| | | '_ \ / _` + "`" + ` | |_) / _` + "`" + ` | __| '_ \
| |  | | | | | | (_| |  __/ (_| | |_| | | |
|_|  |_|_|_| |_|\__,_|_|   \__,_|\__|_| |_|`

const tagline = "Discover your ideal career path"

package constants

// Redis key formats
const (
	// GeoHash set of the last known location of every master
	KeyMasterGeo = "masters:geo"

	// Per-master location detail hash. Format: master:location:{master_id}
	KeyMasterLocation = "master:location:%s"
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldGeohash   = "geohash"
	FieldTimestamp = "ts"
)

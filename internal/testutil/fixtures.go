package testutil

// SWAPI fixtures. "{base}" is replaced with the mock server URL by
// MockSWAPI.Expand / SetJSON so links point back at the mock.

const LukeSkywalker = `{
	"name": "Luke Skywalker",
	"height": "172",
	"mass": "77",
	"hair_color": "blond",
	"birth_year": "19BBY",
	"homeworld": "{base}/api/planets/1/",
	"films": ["{base}/api/films/1/", "{base}/api/films/2/"],
	"species": [],
	"vehicles": ["{base}/api/vehicles/14/"],
	"starships": ["{base}/api/starships/12/"],
	"created": "2014-12-09T13:50:51.644000Z",
	"edited": "2014-12-20T21:17:56.891000Z",
	"url": "{base}/api/people/1/"
}`

const AnakinSkywalker = `{
	"name": "Anakin Skywalker",
	"height": "188",
	"mass": "84",
	"homeworld": "{base}/api/planets/1/",
	"films": ["{base}/api/films/1/"],
	"created": "2014-12-10T16:20:44.310000Z",
	"edited": "2014-12-20T21:17:50.327000Z",
	"url": "{base}/api/people/11/"
}`

const Yoda = `{
	"name": "Yoda",
	"height": "66",
	"mass": "17",
	"homeworld": "{base}/api/planets/28/",
	"films": ["{base}/api/films/2/"],
	"created": "2014-12-15T12:26:01.042000Z",
	"edited": "2014-12-20T21:17:50.345000Z",
	"url": "{base}/api/people/20/"
}`

const ArvelCrynyd = `{
	"name": "Arvel Crynyd",
	"height": "unknown",
	"mass": "unknown",
	"homeworld": "{base}/api/planets/28/",
	"films": ["{base}/api/films/1/"],
	"created": "2014-12-18T11:16:33.020000Z",
	"edited": "2014-12-20T21:17:50.367000Z",
	"url": "{base}/api/people/29/"
}`

// PeopleForSort is a list envelope in upstream order Luke, Anakin, Yoda, Arvel.
const PeopleForSort = `{
	"count": 4,
	"next": null,
	"previous": null,
	"results": [` + LukeSkywalker + `,` + AnakinSkywalker + `,` + Yoda + `,` + ArvelCrynyd + `]
}`

// PeoplePage1 is the first page of the people collection.
const PeoplePage1 = `{
	"count": 82,
	"next": "{base}/api/people/?page=2",
	"previous": null,
	"results": [` + LukeSkywalker + `,` + AnakinSkywalker + `]
}`

const Tatooine = `{"name": "Tatooine", "climate": "arid", "terrain": "desert", "url": "{base}/api/planets/1/"}`

const Dagobah = `{"name": "Dagobah", "climate": "murky", "terrain": "swamp", "url": "{base}/api/planets/28/"}`

const FilmANewHope = `{"title": "A New Hope", "episode_id": 4, "url": "{base}/api/films/1/"}`

const FilmEmpireStrikesBack = `{"title": "The Empire Strikes Back", "episode_id": 5, "url": "{base}/api/films/2/"}`

const VehicleSnowspeeder = `{"name": "Snowspeeder", "url": "{base}/api/vehicles/14/"}`

const StarshipXWing = `{"name": "X-wing", "url": "{base}/api/starships/12/"}`

// RegisterLinkedResources registers every resource the people fixtures link
// to, so expansion against the mock succeeds.
func (m *MockSWAPI) RegisterLinkedResources() {
	m.SetJSON("/api/planets/1/", Tatooine)
	m.SetJSON("/api/planets/28/", Dagobah)
	m.SetJSON("/api/films/1/", FilmANewHope)
	m.SetJSON("/api/films/2/", FilmEmpireStrikesBack)
	m.SetJSON("/api/vehicles/14/", VehicleSnowspeeder)
	m.SetJSON("/api/starships/12/", StarshipXWing)
}

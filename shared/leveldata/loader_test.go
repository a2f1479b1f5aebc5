package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="Cubes">
  <object id="1" x="0" y="0" width="32" height="16">
   <properties>
    <property name="depth" type="float" value="2"/>
   </properties>
  </object>
  <object id="2" name="Glass" x="32" y="32" width="16" height="16">
   <properties>
    <property name="z" type="float" value="1.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="8" y="8">
   <properties>
    <property name="z" type="float" value="2.3"/>
    <property name="heading" type="float" value="90"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

const emptyLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="1">
 <objectgroup id="1" name="Cubes"/>
</map>
`

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(testLevel)},
	}

	data, err := LoadLevel(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", data.Name)
	require.Len(t, data.Boxes, 2)

	first := data.Boxes[0]
	assert.Equal(t, "Cube", first.Name, "unnamed objects default to the collidable surface")
	assert.Equal(t, 0.0, first.MinX)
	assert.Equal(t, 2.0, first.MaxX)
	assert.Equal(t, -1.0, first.MinY)
	assert.Equal(t, 0.0, first.MaxY)
	assert.Equal(t, 0.0, first.MinZ)
	assert.Equal(t, 2.0, first.MaxZ)

	second := data.Boxes[1]
	assert.Equal(t, "Glass", second.Name)
	assert.Equal(t, 1.5, second.MinZ)
	assert.Equal(t, 2.5, second.MaxZ, "depth defaults to one unit")

	require.NotNil(t, data.Spawn)
	assert.Equal(t, 0.5, data.Spawn.X)
	assert.Equal(t, -0.5, data.Spawn.Y)
	assert.Equal(t, 2.3, data.Spawn.Z)
	assert.Equal(t, 90.0, data.Spawn.Heading)

	assert.Equal(t, 2.5, data.Height)
	assert.Equal(t, 3.0, data.MaxX)
	assert.Equal(t, -3.0, data.MinY)
}

func TestLoadLevelErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": &fstest.MapFile{Data: []byte(emptyLevel)},
	}

	_, err := LoadLevel(fsys, "empty.tmx")
	assert.Error(t, err)

	_, err = LoadLevel(fsys, "missing.tmx")
	assert.Error(t, err)
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": &fstest.MapFile{Data: []byte(testLevel)},
		"levels/a.tmx": &fstest.MapFile{Data: []byte(testLevel)},
	}

	levels, names, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAllLevels(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}

package roster

const imgBase = "https://ddragon.leagueoflegends.com/cdn/14.23.1/img/champion/"

// DefaultCatalog is the stock champion pool. Deployments with their own
// data source can build a Catalog from any slice instead.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultChampions)
}

var defaultChampions = []Champion{
	{ID: "aatrox", Name: "Aatrox", Role: RoleTop, Image: imgBase + "Aatrox.png"},
	{ID: "ahri", Name: "Ahri", Role: RoleMid, Image: imgBase + "Ahri.png"},
	{ID: "akali", Name: "Akali", Role: RoleMid, Image: imgBase + "Akali.png"},
	{ID: "alistar", Name: "Alistar", Role: RoleSupport, Image: imgBase + "Alistar.png"},
	{ID: "amumu", Name: "Amumu", Role: RoleJungle, Image: imgBase + "Amumu.png"},
	{ID: "annie", Name: "Annie", Role: RoleMid, Image: imgBase + "Annie.png"},
	{ID: "aphelios", Name: "Aphelios", Role: RoleBot, Image: imgBase + "Aphelios.png"},
	{ID: "ashe", Name: "Ashe", Role: RoleBot, Image: imgBase + "Ashe.png"},
	{ID: "azir", Name: "Azir", Role: RoleMid, Image: imgBase + "Azir.png"},
	{ID: "bard", Name: "Bard", Role: RoleSupport, Image: imgBase + "Bard.png"},
	{ID: "blitzcrank", Name: "Blitzcrank", Role: RoleSupport, Image: imgBase + "Blitzcrank.png"},
	{ID: "braum", Name: "Braum", Role: RoleSupport, Image: imgBase + "Braum.png"},
	{ID: "caitlyn", Name: "Caitlyn", Role: RoleBot, Image: imgBase + "Caitlyn.png"},
	{ID: "camille", Name: "Camille", Role: RoleTop, Image: imgBase + "Camille.png"},
	{ID: "darius", Name: "Darius", Role: RoleTop, Image: imgBase + "Darius.png"},
	{ID: "diana", Name: "Diana", Role: RoleJungle, Image: imgBase + "Diana.png"},
	{ID: "draven", Name: "Draven", Role: RoleBot, Image: imgBase + "Draven.png"},
	{ID: "ekko", Name: "Ekko", Role: RoleJungle, Image: imgBase + "Ekko.png"},
	{ID: "elise", Name: "Elise", Role: RoleJungle, Image: imgBase + "Elise.png"},
	{ID: "ezreal", Name: "Ezreal", Role: RoleBot, Image: imgBase + "Ezreal.png"},
	{ID: "fiora", Name: "Fiora", Role: RoleTop, Image: imgBase + "Fiora.png"},
	{ID: "gnar", Name: "Gnar", Role: RoleTop, Image: imgBase + "Gnar.png"},
	{ID: "graves", Name: "Graves", Role: RoleJungle, Image: imgBase + "Graves.png"},
	{ID: "gwen", Name: "Gwen", Role: RoleTop, Image: imgBase + "Gwen.png"},
	{ID: "janna", Name: "Janna", Role: RoleSupport, Image: imgBase + "Janna.png"},
	{ID: "jarvaniv", Name: "Jarvan IV", Role: RoleJungle, Image: imgBase + "JarvanIV.png"},
	{ID: "jax", Name: "Jax", Role: RoleTop, Image: imgBase + "Jax.png"},
	{ID: "jhin", Name: "Jhin", Role: RoleBot, Image: imgBase + "Jhin.png"},
	{ID: "jinx", Name: "Jinx", Role: RoleBot, Image: imgBase + "Jinx.png"},
	{ID: "kaisa", Name: "Kai'Sa", Role: RoleBot, Image: imgBase + "Kaisa.png"},
	{ID: "karma", Name: "Karma", Role: RoleSupport, Image: imgBase + "Karma.png"},
	{ID: "kayn", Name: "Kayn", Role: RoleJungle, Image: imgBase + "Kayn.png"},
	{ID: "khazix", Name: "Kha'Zix", Role: RoleJungle, Image: imgBase + "Khazix.png"},
	{ID: "ksante", Name: "K'Sante", Role: RoleTop, Image: imgBase + "KSante.png"},
	{ID: "leblanc", Name: "LeBlanc", Role: RoleMid, Image: imgBase + "Leblanc.png"},
	{ID: "leesin", Name: "Lee Sin", Role: RoleJungle, Image: imgBase + "LeeSin.png"},
	{ID: "leona", Name: "Leona", Role: RoleSupport, Image: imgBase + "Leona.png"},
	{ID: "lucian", Name: "Lucian", Role: RoleBot, Image: imgBase + "Lucian.png"},
	{ID: "lulu", Name: "Lulu", Role: RoleSupport, Image: imgBase + "Lulu.png"},
	{ID: "malphite", Name: "Malphite", Role: RoleTop, Image: imgBase + "Malphite.png"},
	{ID: "nautilus", Name: "Nautilus", Role: RoleSupport, Image: imgBase + "Nautilus.png"},
	{ID: "ori", Name: "Orianna", Role: RoleMid, Image: imgBase + "Orianna.png"},
	{ID: "rakan", Name: "Rakan", Role: RoleSupport, Image: imgBase + "Rakan.png"},
	{ID: "renekton", Name: "Renekton", Role: RoleTop, Image: imgBase + "Renekton.png"},
	{ID: "sejuani", Name: "Sejuani", Role: RoleJungle, Image: imgBase + "Sejuani.png"},
	{ID: "sylas", Name: "Sylas", Role: RoleMid, Image: imgBase + "Sylas.png"},
	{ID: "syndra", Name: "Syndra", Role: RoleMid, Image: imgBase + "Syndra.png"},
	{ID: "thresh", Name: "Thresh", Role: RoleSupport, Image: imgBase + "Thresh.png"},
	{ID: "varus", Name: "Varus", Role: RoleBot, Image: imgBase + "Varus.png"},
	{ID: "vi", Name: "Vi", Role: RoleJungle, Image: imgBase + "Vi.png"},
	{ID: "viego", Name: "Viego", Role: RoleJungle, Image: imgBase + "Viego.png"},
	{ID: "viktor", Name: "Viktor", Role: RoleMid, Image: imgBase + "Viktor.png"},
	{ID: "xayah", Name: "Xayah", Role: RoleBot, Image: imgBase + "Xayah.png"},
	{ID: "yasuo", Name: "Yasuo", Role: RoleMid, Image: imgBase + "Yasuo.png"},
	{ID: "yone", Name: "Yone", Role: RoleMid, Image: imgBase + "Yone.png"},
	{ID: "zac", Name: "Zac", Role: RoleJungle, Image: imgBase + "Zac.png"},
	{ID: "zed", Name: "Zed", Role: RoleMid, Image: imgBase + "Zed.png"},
	{ID: "zeri", Name: "Zeri", Role: RoleBot, Image: imgBase + "Zeri.png"},
}

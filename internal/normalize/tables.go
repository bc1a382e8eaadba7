// Package normalize maps raw captured text into the canonical vocabularies
// used by the job store: company scale brackets, legal-entity types, and the
// province/city/district region hierarchy. All lookup tables live here as
// package data, loaded once.
package normalize

// cityProvince maps prefecture-level cities to their province. Municipalities
// (北京/上海/天津/重庆) are deliberately absent; they are handled by the
// municipality rule in Region.
var cityProvince = map[string]string{
	// 广东
	"广州": "广东", "深圳": "广东", "东莞": "广东", "佛山": "广东", "中山": "广东",
	"珠海": "广东", "惠州": "广东", "江门": "广东", "湛江": "广东", "茂名": "广东",
	"肇庆": "广东", "梅州": "广东", "汕头": "广东", "河源": "广东", "阳江": "广东",
	"清远": "广东", "韶关": "广东", "揭阳": "广东", "潮州": "广东", "云浮": "广东",
	"汕尾": "广东",
	// 浙江
	"杭州": "浙江", "宁波": "浙江", "温州": "浙江", "嘉兴": "浙江", "湖州": "浙江",
	"绍兴": "浙江", "金华": "浙江", "衢州": "浙江", "舟山": "浙江", "台州": "浙江",
	"丽水": "浙江",
	// 江苏
	"南京": "江苏", "苏州": "江苏", "无锡": "江苏", "常州": "江苏", "镇江": "江苏",
	"南通": "江苏", "泰州": "江苏", "扬州": "江苏", "盐城": "江苏", "连云港": "江苏",
	"徐州": "江苏", "淮安": "江苏", "宿迁": "江苏",
	// 山东
	"济南": "山东", "青岛": "山东", "淄博": "山东", "枣庄": "山东", "东营": "山东",
	"烟台": "山东", "潍坊": "山东", "济宁": "山东", "泰安": "山东", "威海": "山东",
	"日照": "山东", "临沂": "山东", "德州": "山东", "聊城": "山东", "滨州": "山东",
	"菏泽": "山东",
	// 河南
	"郑州": "河南", "开封": "河南", "洛阳": "河南", "平顶山": "河南", "安阳": "河南",
	"鹤壁": "河南", "新乡": "河南", "焦作": "河南", "濮阳": "河南", "许昌": "河南",
	"漯河": "河南", "三门峡": "河南", "南阳": "河南", "商丘": "河南", "信阳": "河南",
	"周口": "河南", "驻马店": "河南",
	// 湖北
	"武汉": "湖北", "黄石": "湖北", "十堰": "湖北", "宜昌": "湖北", "襄阳": "湖北",
	"鄂州": "湖北", "荆门": "湖北", "孝感": "湖北", "荆州": "湖北", "黄冈": "湖北",
	"咸宁": "湖北", "随州": "湖北",
	// 湖南
	"长沙": "湖南", "株洲": "湖南", "湘潭": "湖南", "衡阳": "湖南", "邵阳": "湖南",
	"岳阳": "湖南", "常德": "湖南", "张家界": "湖南", "益阳": "湖南", "郴州": "湖南",
	"永州": "湖南", "怀化": "湖南", "娄底": "湖南",
	// 江西
	"南昌": "江西", "景德镇": "江西", "萍乡": "江西", "九江": "江西", "新余": "江西",
	"鹰潭": "江西", "赣州": "江西", "吉安": "江西", "宜春": "江西", "抚州": "江西",
	"上饶": "江西",
	// 安徽
	"合肥": "安徽", "芜湖": "安徽", "蚌埠": "安徽", "淮南": "安徽", "马鞍山": "安徽",
	"淮北": "安徽", "铜陵": "安徽", "安庆": "安徽", "黄山": "安徽", "滁州": "安徽",
	"阜阳": "安徽", "宿州": "安徽", "六安": "安徽", "亳州": "安徽", "池州": "安徽",
	"宣城": "安徽",
	// 福建
	"福州": "福建", "厦门": "福建", "莆田": "福建", "三明": "福建", "泉州": "福建",
	"漳州": "福建", "南平": "福建", "龙岩": "福建", "宁德": "福建",
	// 河北
	"石家庄": "河北", "唐山": "河北", "秦皇岛": "河北", "邯郸": "河北", "邢台": "河北",
	"保定": "河北", "张家口": "河北", "承德": "河北", "沧州": "河北", "廊坊": "河北",
	"衡水": "河北",
	// 山西
	"太原": "山西", "大同": "山西", "阳泉": "山西", "长治": "山西", "晋城": "山西",
	"朔州": "山西", "晋中": "山西", "运城": "山西", "忻州": "山西", "临汾": "山西",
	"吕梁": "山西",
	// 辽宁
	"沈阳": "辽宁", "大连": "辽宁", "鞍山": "辽宁", "抚顺": "辽宁", "本溪": "辽宁",
	"丹东": "辽宁", "锦州": "辽宁", "营口": "辽宁", "阜新": "辽宁", "辽阳": "辽宁",
	"盘锦": "辽宁", "铁岭": "辽宁", "朝阳": "辽宁", "葫芦岛": "辽宁",
	// 吉林
	"长春": "吉林", "吉林": "吉林", "四平": "吉林", "辽源": "吉林", "通化": "吉林",
	"白山": "吉林", "松原": "吉林", "白城": "吉林",
	// 黑龙江
	"哈尔滨": "黑龙江", "齐齐哈尔": "黑龙江", "鸡西": "黑龙江", "鹤岗": "黑龙江",
	"双鸭山": "黑龙江", "大庆": "黑龙江", "伊春": "黑龙江", "佳木斯": "黑龙江",
	"七台河": "黑龙江", "牡丹江": "黑龙江", "黑河": "黑龙江", "绥化": "黑龙江",
	// 四川
	"成都": "四川", "自贡": "四川", "攀枝花": "四川", "泸州": "四川", "德阳": "四川",
	"绵阳": "四川", "广元": "四川", "遂宁": "四川", "内江": "四川", "乐山": "四川",
	"南充": "四川", "眉山": "四川", "宜宾": "四川", "广安": "四川", "达州": "四川",
	"雅安": "四川", "巴中": "四川", "资阳": "四川",
	// 贵州
	"贵阳": "贵州", "六盘水": "贵州", "遵义": "贵州", "安顺": "贵州", "毕节": "贵州",
	"铜仁": "贵州",
	// 云南
	"昆明": "云南", "曲靖": "云南", "玉溪": "云南", "保山": "云南", "昭通": "云南",
	"丽江": "云南", "普洱": "云南", "临沧": "云南",
	// 陕西
	"西安": "陕西", "铜川": "陕西", "宝鸡": "陕西", "咸阳": "陕西", "渭南": "陕西",
	"延安": "陕西", "汉中": "陕西", "榆林": "陕西", "安康": "陕西", "商洛": "陕西",
	// 甘肃
	"兰州": "甘肃", "嘉峪关": "甘肃", "金昌": "甘肃", "白银": "甘肃", "天水": "甘肃",
	"武威": "甘肃", "张掖": "甘肃", "平凉": "甘肃", "酒泉": "甘肃", "庆阳": "甘肃",
	"定西": "甘肃", "陇南": "甘肃",
	// 青海
	"西宁": "青海", "海东": "青海",
	// 宁夏
	"银川": "宁夏", "石嘴山": "宁夏", "吴忠": "宁夏", "固原": "宁夏", "中卫": "宁夏",
	// 新疆
	"乌鲁木齐": "新疆", "克拉玛依": "新疆", "吐鲁番": "新疆", "哈密": "新疆",
	// 内蒙古
	"呼和浩特": "内蒙古", "包头": "内蒙古", "乌海": "内蒙古", "赤峰": "内蒙古",
	"通辽": "内蒙古", "鄂尔多斯": "内蒙古", "呼伦贝尔": "内蒙古", "巴彦淖尔": "内蒙古",
	"乌兰察布": "内蒙古",
	// 西藏
	"拉萨": "西藏", "日喀则": "西藏", "昌都": "西藏", "林芝": "西藏", "山南": "西藏",
	"那曲": "西藏",
	// 海南
	"海口": "海南", "三亚": "海南", "三沙": "海南", "儋州": "海南",
}

// guangdongCities enumerates the cities whose addresses are reported at city
// granularity only (the district is dropped).
var guangdongCities = map[string]bool{
	"广州": true, "深圳": true, "珠海": true, "汕头": true, "佛山": true,
	"韶关": true, "湛江": true, "肇庆": true, "江门": true, "茂名": true,
	"惠州": true, "梅州": true, "汕尾": true, "河源": true, "阳江": true,
	"清远": true, "东莞": true, "中山": true, "潮州": true, "揭阳": true,
	"云浮": true,
}

// regionNoise rejects region candidates that grabbed unrelated prose:
// recruiting-ad boilerplate, benefit-plan words, and generic company/region
// phrases. A hit empties the field.
var regionNoise = []string{
	"注册地位于", "注册地址", "营业执照", "工商注册",
	"找工作", "免费发布", "登记简历", "公司福利", "饭补", "加班补助",
	"交通便利", "餐补", "市中心区", "不匹配", "人公司", "福利", "补助", "便利",
	"有限公司", "科技有限公司", "信息科技",
	"华南地区", "华北地区", "华东地区", "华西地区", "在华", "地区", "公司在",
}

// canonicalCompanyTypes is the fixed list of legal-entity types, tried by
// direct containment before the keyword fallback groups.
var canonicalCompanyTypes = []string{
	"国有企业",
	"集体所有制企业",
	"私营企业",
	"联营企业",
	"外商投资企业",
	"股份制企业",
	"个人独资企业",
	"合伙企业",
	"有限责任公司",
	"股份有限公司",
	"非法人组织企业",
	"农民专业合作组织",
}

// companyTypeRules are ordered keyword-group fallbacks; the first group with a
// contained keyword wins. Order matters: 外商投资 must be tried before 个人独资
// because both lists carry "独资".
var companyTypeRules = []struct {
	canonical string
	keywords  []string
}{
	{"有限责任公司", []string{"有限责任公司", "有限公司", "责任有限公司"}},
	{"股份有限公司", []string{"股份有限公司", "股份公司"}},
	{"私营企业", []string{"私营", "民营", "私人"}},
	{"国有企业", []string{"国有", "国营", "央企", "国企"}},
	{"外商投资企业", []string{"外商", "外资", "合资", "独资"}},
	{"股份制企业", []string{"股份制", "股份合作"}},
	{"集体所有制企业", []string{"集体", "集体所有制"}},
	{"个人独资企业", []string{"个人独资", "独资"}},
	{"合伙企业", []string{"合伙", "普通合伙", "有限合伙"}},
	{"联营企业", []string{"联营"}},
	{"农民专业合作组织", []string{"合作社", "合作组织", "农民专业合作"}},
	{"非法人组织企业", []string{"非法人", "分公司", "分支机构"}},
}

// scaleBrackets maps an upper-bound headcount to its canonical bracket label.
var scaleBrackets = []struct {
	max   int
	label string
}{
	{20, "0-20"},
	{99, "20-99"},
	{499, "100-499"},
	{999, "500-999"},
	{9999, "1000-9999"},
}

const scaleTopBracket = "10000+"
